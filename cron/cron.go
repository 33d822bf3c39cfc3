// Package cron runs the appointment reminder job: once a minute it looks
// for scheduled appointments starting within the next hour and mails the
// client, using Redis to make sure each reminder goes out at most once.
package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/citasya/citas-api/models"
	"github.com/citasya/citas-api/store"
	"github.com/citasya/citas-api/utils"
)

const reminderDedupTTL = 2 * time.Hour

// StartReminders wires the reminder job into a cron scheduler and starts it.
func StartReminders(st *store.Store, rdb *goredis.Client) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		sendAppointmentReminders(st, rdb)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
	return c, nil
}

func sendAppointmentReminders(st *store.Store, rdb *goredis.Client) {
	ctx := context.Background()
	now := time.Now()
	date := now.Format("2006-01-02")
	from := now.Add(55 * time.Minute).Format("15:04")
	to := now.Add(65 * time.Minute).Format("15:04")

	appointments, err := st.ScheduledBetween(ctx, date, from, to)
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for i := range appointments {
		appt := &appointments[i]

		// SETNX guards against re-sending on every minute tick.
		key := fmt.Sprintf("reminder:%d", appt.ID)
		fresh, err := rdb.SetNX(ctx, key, 1, reminderDedupTTL).Result()
		if err != nil {
			log.Printf("Reminder dedup check failed for appointment %d: %v", appt.ID, err)
			continue
		}
		if !fresh {
			continue
		}

		client, err := st.GetClient(ctx, appt.ClientID)
		if err != nil {
			log.Printf("Failed to load client %d for reminder: %v", appt.ClientID, err)
			continue
		}
		if err := sendReminderEmail(client, appt); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appt.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appt.ID, client.Email)
	}
}

func sendReminderEmail(client *models.Client, appt *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appt.Subject)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Subject:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Estimated End:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please be ready on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Citas Team</p>
	`, client.Username, appt.Subject, appt.Date, appt.StartTime, appt.EstimatedEndTime, appt.Status)

	return utils.SendEmail(client.Email, subject, body)
}
