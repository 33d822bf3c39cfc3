package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/citasya/citas-api/models"
)

// CreateAppointment is the single booking path behind both createAppointment
// and scheduleAppointment. Inside one transaction it checks that the client
// and specialist exist, that the window is well-formed and inside the
// specialist's weekly template, and that it doesn't overlap an existing
// booking for that specialist on that date.
func (s *Store) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	db, cancel := s.begin(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		return createAppointmentTx(tx, appt)
	})
	return translate(err)
}

// createAppointmentTx runs the booking checks and the insert inside the
// caller's transaction. Seeded appointments from createSpecialist and
// createClient share this path.
func createAppointmentTx(tx *gorm.DB, appt *models.Appointment) error {
	day, err := models.ParseDate(appt.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	slot := appt.Slot()
	if err := slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var cl models.Client
	if err := tx.First(&cl, appt.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: client %d", ErrNotFound, appt.ClientID)
		}
		return err
	}

	// Take the specialist's row lock before counting clashes so concurrent
	// bookings for one specialist serialize. A no-op update acquires the
	// lock on Postgres; SELECT FOR UPDATE would break on SQLite.
	res := tx.Model(&models.Specialist{}).Where("id = ?", appt.SpecialistID).
		UpdateColumn("highlighted", gorm.Expr("highlighted"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: specialist %d", ErrNotFound, appt.SpecialistID)
	}
	var sp models.Specialist
	if err := tx.First(&sp, appt.SpecialistID).Error; err != nil {
		return err
	}

	if !sp.WeeklySchedule.Data().Covers(day.Weekday(), slot) {
		return fmt.Errorf("%w: %s %s-%s is outside the specialist's weekly schedule",
			ErrInvalid, day.Weekday(), appt.StartTime, appt.EstimatedEndTime)
	}

	// Half-open overlap on zero-padded HH:MM strings.
	var clashes int64
	err = tx.Model(&models.Appointment{}).
		Where("specialist_id = ? AND date = ? AND start_time < ? AND estimated_end_time > ?",
			appt.SpecialistID, appt.Date, appt.EstimatedEndTime, appt.StartTime).
		Count(&clashes).Error
	if err != nil {
		return err
	}
	if clashes > 0 {
		return fmt.Errorf("%w: specialist %d already booked on %s between %s and %s",
			ErrConflict, appt.SpecialistID, appt.Date, appt.StartTime, appt.EstimatedEndTime)
	}

	return tx.Create(appt).Error
}

// AppointmentsOn lists a specialist's bookings for one date, ordered by
// start time.
func (s *Store) AppointmentsOn(ctx context.Context, specialistID uint, date string) ([]models.Appointment, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var appts []models.Appointment
	err := db.Where("specialist_id = ? AND date = ?", specialistID, date).
		Order("start_time").
		Find(&appts).Error
	if err != nil {
		return nil, translate(err)
	}
	return appts, nil
}

// GetDay computes the day projection for a specialist: the weekly template
// for that weekday minus booked windows, plus the bookings themselves.
func (s *Store) GetDay(ctx context.Context, specialistID uint, date string) (*models.Day, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	sp, err := s.GetSpecialist(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	appts, err := s.AppointmentsOn(ctx, specialistID, date)
	if err != nil {
		return nil, err
	}

	booked := make([]models.TimeSlot, 0, len(appts))
	for i := range appts {
		booked = append(booked, appts[i].Slot())
	}
	template := sp.WeeklySchedule.Data().ForWeekday(day.Weekday())

	return &models.Day{
		Date:               date,
		Weekday:            day.Weekday().String(),
		AvailableTimeSlots: models.SubtractBooked(template, booked),
		Appointments:       appts,
	}, nil
}

// ScheduledBetween returns scheduled appointments on the given date whose
// start time falls in [from, to]. Used by the reminder job.
func (s *Store) ScheduledBetween(ctx context.Context, date, from, to string) ([]models.Appointment, error) {
	db, cancel := s.begin(ctx)
	defer cancel()

	var appts []models.Appointment
	err := db.Where("status = ? AND date = ? AND start_time BETWEEN ? AND ?",
		models.StatusScheduled, date, from, to).
		Find(&appts).Error
	if err != nil {
		return nil, translate(err)
	}
	return appts, nil
}
