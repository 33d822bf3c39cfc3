package models

import (
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// TimeSlot is a clock interval within a single day, "HH:MM" 24h format.
// Availability templates treat it as closed (start <= end); appointment
// conflict checks treat booked windows as half-open [start, end) so
// back-to-back bookings are allowed.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s TimeSlot) Validate() error {
	start, err := clockMinutes(s.Start)
	if err != nil {
		return err
	}
	end, err := clockMinutes(s.End)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("time slot ends (%s) before it starts (%s)", s.End, s.Start)
	}
	return nil
}

// Contains reports whether the slot fully covers other.
func (s TimeSlot) Contains(other TimeSlot) bool {
	sStart, sEnd, err := s.minutes()
	if err != nil {
		return false
	}
	oStart, oEnd, err := other.minutes()
	if err != nil {
		return false
	}
	return sStart <= oStart && oEnd <= sEnd
}

// Overlaps reports whether two half-open [start, end) windows intersect.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	sStart, sEnd, err := s.minutes()
	if err != nil {
		return false
	}
	oStart, oEnd, err := other.minutes()
	if err != nil {
		return false
	}
	return sStart < oEnd && oStart < sEnd
}

func (s TimeSlot) minutes() (start, end int, err error) {
	if start, err = clockMinutes(s.Start); err != nil {
		return 0, 0, err
	}
	if end, err = clockMinutes(s.End); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func clockMinutes(v string) (int, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", v)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WeeklySchedule is a specialist's recurring availability template, one
// ordered slot list per weekday.
type WeeklySchedule struct {
	Monday    []TimeSlot `json:"Monday,omitempty"`
	Tuesday   []TimeSlot `json:"Tuesday,omitempty"`
	Wednesday []TimeSlot `json:"Wednesday,omitempty"`
	Thursday  []TimeSlot `json:"Thursday,omitempty"`
	Friday    []TimeSlot `json:"Friday,omitempty"`
	Saturday  []TimeSlot `json:"Saturday,omitempty"`
	Sunday    []TimeSlot `json:"Sunday,omitempty"`
}

func (w WeeklySchedule) ForWeekday(d time.Weekday) []TimeSlot {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Validate checks every slot parses with start <= end and that slots within
// one weekday do not overlap each other.
func (w WeeklySchedule) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		slots := w.ForWeekday(d)
		for i, slot := range slots {
			if err := slot.Validate(); err != nil {
				return fmt.Errorf("%s: %v", d, err)
			}
			for _, prev := range slots[:i] {
				if slot.Overlaps(prev) {
					return fmt.Errorf("%s: overlapping availability slots %s-%s and %s-%s",
						d, prev.Start, prev.End, slot.Start, slot.End)
				}
			}
		}
	}
	return nil
}

// Covers reports whether some template slot for the weekday fully contains
// the requested window.
func (w WeeklySchedule) Covers(d time.Weekday, slot TimeSlot) bool {
	for _, tpl := range w.ForWeekday(d) {
		if tpl.Contains(slot) {
			return true
		}
	}
	return false
}

// SubtractBooked carves the booked windows out of the availability template
// and returns what remains, splitting template slots where needed.
func SubtractBooked(template, booked []TimeSlot) []TimeSlot {
	free := make([]TimeSlot, 0, len(template))
	for _, tpl := range template {
		start, end, err := tpl.minutes()
		if err != nil {
			continue
		}
		pieces := [][2]int{{start, end}}
		for _, b := range booked {
			bStart, bEnd, err := b.minutes()
			if err != nil {
				continue
			}
			var next [][2]int
			for _, p := range pieces {
				if bEnd <= p[0] || p[1] <= bStart {
					next = append(next, p)
					continue
				}
				if p[0] < bStart {
					next = append(next, [2]int{p[0], bStart})
				}
				if bEnd < p[1] {
					next = append(next, [2]int{bEnd, p[1]})
				}
			}
			pieces = next
		}
		for _, p := range pieces {
			if p[0] < p[1] {
				free = append(free, TimeSlot{Start: minutesClock(p[0]), End: minutesClock(p[1])})
			}
		}
	}
	return free
}

// ParseDate parses a calendar date in "2006-01-02" form.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return t, nil
}

// Day is a computed projection of one calendar date for a specialist: the
// slots still open, the appointments already booked, and the weekday name.
// It is never persisted.
type Day struct {
	Date               string
	Weekday            string
	AvailableTimeSlots []TimeSlot
	Appointments       []Appointment
}
