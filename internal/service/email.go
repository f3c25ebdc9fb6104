package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func formatAmount(amountCents int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, amountCents/100, amountCents%100)
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, hostEmail, guestName, propertyTitle, reference string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", hostEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Booking Request - %s", reference))

	body := fmt.Sprintf("Hello,\n\n%s has requested a stay at %s.\n\nBooking reference: %s\n\nThe booking is awaiting payment and will be confirmed automatically once the payment settles.\n\nBest regards,\nThe Homestay Team", guestName, propertyTitle, reference)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendBookingConfirmationNotification(ctx context.Context, guestEmail, propertyTitle, reference string, totalAmountCents int64, currency string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", guestEmail)
	m.SetHeader("Subject", fmt.Sprintf("Booking Confirmed - %s", reference))

	body := fmt.Sprintf("Hello,\n\nYour booking at %s is confirmed.\n\nBooking reference: %s\nTotal paid: %s\n\nWe look forward to hosting you.\n\nBest regards,\nThe Homestay Team", propertyTitle, reference, formatAmount(totalAmountCents, currency))
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendBookingCancellationNotification(ctx context.Context, guestEmail, propertyTitle, reference string, refundCents int64, currency string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", guestEmail)
	m.SetHeader("Subject", fmt.Sprintf("Booking Cancelled - %s", reference))

	body := fmt.Sprintf("Hello,\n\nYour booking at %s has been cancelled.\n\nBooking reference: %s\n", propertyTitle, reference)
	if refundCents > 0 {
		body += fmt.Sprintf("Refund amount: %s\n\nThe refund will be processed to your original payment method.\n", formatAmount(refundCents, currency))
	} else {
		body += "\nNo refund is due under the property's cancellation policy.\n"
	}
	body += "\nBest regards,\nThe Homestay Team"
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendCheckInReminder(ctx context.Context, guestEmail, guestName, propertyTitle, reference, checkInTime string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", guestEmail)
	m.SetHeader("Subject", fmt.Sprintf("Check-in Reminder - %s", reference))

	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your stay at %s begins tomorrow.\n\nBooking reference: %s\nCheck-in from: %s\n\nSafe travels,\nThe Homestay Team", guestName, propertyTitle, reference, checkInTime)
	m.SetBody("text/plain", body)

	return s.send(m)
}
