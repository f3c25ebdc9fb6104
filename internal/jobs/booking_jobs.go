package jobs

import (
	"context"
	"time"

	"homestay-booking-backend/internal/logger"
)

// CompleteFinishedStays closes out bookings whose check-out date has passed.
// Guests who checked in but whose departure was never recorded are completed
// along with the checked-out ones.
func (jr *JobRunner) CompleteFinishedStays() {
	jr.runWithRecovery("CompleteFinishedStays", func() {
		ctx := context.Background()
		today := midnightUTC(jr.clock.Now())

		result, err := jr.db.ExecContext(ctx, `
			UPDATE bookings
			SET status = 'completed', updated_on = NOW()
			WHERE status IN ('confirmed', 'checked_in', 'checked_out')
			  AND check_out_date < $1`,
			today)
		if err != nil {
			logger.Error("Failed to complete finished stays", "error", err)
			return
		}

		rowsAffected, _ := result.RowsAffected()
		logger.Info("Finished stays completed", "count", rowsAffected)
	})
}

// MarkNoShows flags bookings whose guests never arrived: one day past
// check-in, still pending or confirmed, and no recorded arrival.
func (jr *JobRunner) MarkNoShows() {
	jr.runWithRecovery("MarkNoShows", func() {
		ctx := context.Background()
		cutoff := midnightUTC(jr.clock.Now()).AddDate(0, 0, -1)

		result, err := jr.db.ExecContext(ctx, `
			UPDATE bookings
			SET status = 'no_show', updated_on = NOW()
			WHERE status IN ('pending', 'confirmed')
			  AND check_in_date < $1
			  AND actual_check_in_time IS NULL`,
			cutoff)
		if err != nil {
			logger.Error("Failed to mark no-shows", "error", err)
			return
		}

		rowsAffected, _ := result.RowsAffected()
		logger.Info("No-show bookings marked", "count", rowsAffected)
	})
}

// SendCheckInReminders emails every guest whose confirmed stay starts
// tomorrow.
func (jr *JobRunner) SendCheckInReminders() {
	jr.runWithRecovery("SendCheckInReminders", func() {
		ctx := context.Background()
		tomorrow := midnightUTC(jr.clock.Now()).AddDate(0, 0, 1)

		rows, err := jr.db.QueryContext(ctx, `
			SELECT b.booking_reference, b.guest_name, b.guest_email, p.title, p.check_in_time
			FROM bookings b
			JOIN properties p ON p.id = b.property_id
			WHERE b.status = 'confirmed' AND b.check_in_date = $1`,
			tomorrow)
		if err != nil {
			logger.Error("Failed to load upcoming stays", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var reference, guestName, guestEmail, propertyTitle, checkInTime string
			if err := rows.Scan(&reference, &guestName, &guestEmail, &propertyTitle, &checkInTime); err != nil {
				logger.Error("Failed to scan upcoming stay", "error", err)
				continue
			}
			if checkInTime == "" {
				checkInTime = "15:00"
			}

			if err := jr.services.Email.SendCheckInReminder(ctx, guestEmail, guestName, propertyTitle, reference, checkInTime); err != nil {
				logger.Error("Failed to send check-in reminder",
					"reference", reference,
					"error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Failed iterating upcoming stays", "error", err)
		}

		logger.Info("Check-in reminders sent", "count", sent)
	})
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
