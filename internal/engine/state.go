package engine

import (
	"fmt"
	"time"

	"homestay-booking-backend/internal/domain"
)

// transitions lists the allowed status moves. Cancellation is handled
// separately by Cancel because it also depends on the policy window.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusPending:    {domain.BookingStatusConfirmed, domain.BookingStatusCancelled, domain.BookingStatusNoShow},
	domain.BookingStatusConfirmed:  {domain.BookingStatusCheckedIn, domain.BookingStatusCancelled, domain.BookingStatusCompleted, domain.BookingStatusNoShow},
	domain.BookingStatusCheckedIn:  {domain.BookingStatusCheckedOut, domain.BookingStatusCompleted},
	domain.BookingStatusCheckedOut: {domain.BookingStatusCompleted},
}

// CanTransition reports whether the lifecycle allows moving from one status
// to another.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Confirm moves a pending booking to confirmed, marking it paid. Only valid
// from pending.
func Confirm(b *domain.Booking, now time.Time) error {
	if b.Status != domain.BookingStatusPending {
		return fmt.Errorf("%w: cannot confirm booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.Status = domain.BookingStatusConfirmed
	b.PaymentStatus = domain.PaymentStatusPaid
	b.ConfirmedAt = &now
	return nil
}

// Cancel cancels the booking at the given time, recording the reason and the
// refund owed under the property's policy. Fails with ErrNotCancellable when
// the booking is terminal or the policy window has elapsed; a second cancel
// attempt therefore always fails.
func Cancel(b *domain.Booking, policy domain.CancellationPolicy, now time.Time, reason string) error {
	if !CanCancel(b, policy, now) {
		return fmt.Errorf("%w: status %q, %.0f hours before check-in", ErrNotCancellable, b.Status, HoursBeforeCheckIn(b, now))
	}

	// Refund is computed before the status flips: RefundAmount of a cancelled
	// booking is always zero.
	refund := RefundAmount(b, policy, now)

	b.Status = domain.BookingStatusCancelled
	b.CancelledAt = &now
	b.CancellationReason = reason
	b.RefundAmountCents = refund
	if refund > 0 {
		b.PaymentStatus = domain.PaymentStatusRefunded
	}
	return nil
}

// CheckIn records the guest's arrival.
func CheckIn(b *domain.Booking, now time.Time) error {
	if !CanTransition(b.Status, domain.BookingStatusCheckedIn) {
		return fmt.Errorf("%w: cannot check in booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.Status = domain.BookingStatusCheckedIn
	b.ActualCheckInTime = &now
	return nil
}

// CheckOut records the guest's departure.
func CheckOut(b *domain.Booking, now time.Time) error {
	if !CanTransition(b.Status, domain.BookingStatusCheckedOut) {
		return fmt.Errorf("%w: cannot check out booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.Status = domain.BookingStatusCheckedOut
	b.ActualCheckOutTime = &now
	return nil
}

// Complete closes out a finished stay.
func Complete(b *domain.Booking) error {
	if !CanTransition(b.Status, domain.BookingStatusCompleted) {
		return fmt.Errorf("%w: cannot complete booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.Status = domain.BookingStatusCompleted
	return nil
}

// MarkNoShow marks a booking whose guest never arrived.
func MarkNoShow(b *domain.Booking) error {
	if !CanTransition(b.Status, domain.BookingStatusNoShow) {
		return fmt.Errorf("%w: cannot mark booking in status %q as no-show", ErrInvalidTransition, b.Status)
	}
	b.Status = domain.BookingStatusNoShow
	return nil
}
