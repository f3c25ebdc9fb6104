package engine

import (
	"testing"

	"homestay-booking-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	now := date(2024, 8, 1)

	t.Run("Pending booking confirms", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusPending}
		err := Confirm(b, now)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
		assert.Equal(t, domain.PaymentStatusPaid, b.PaymentStatus)
		assert.Equal(t, now, *b.ConfirmedAt)
	})

	t.Run("Only valid from pending", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.BookingStatusConfirmed,
			domain.BookingStatusCheckedIn,
			domain.BookingStatusCancelled,
			domain.BookingStatusCompleted,
		} {
			b := &domain.Booking{Status: status}
			assert.ErrorIs(t, Confirm(b, now), ErrInvalidTransition)
		}
	})
}

func TestCancel(t *testing.T) {
	now := date(2024, 8, 1)

	t.Run("Sets cancellation fields and refund", func(t *testing.T) {
		b := moderateBooking(now, 150)
		err := Cancel(b, domain.CancellationPolicyModerate, now, "change of plans")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		assert.Equal(t, now, *b.CancelledAt)
		assert.Equal(t, "change of plans", b.CancellationReason)
		assert.Equal(t, int64(900_000), b.RefundAmountCents)
		assert.Equal(t, domain.PaymentStatusRefunded, b.PaymentStatus)
	})

	t.Run("Half refund window", func(t *testing.T) {
		b := moderateBooking(now, 50)
		assert.NoError(t, Cancel(b, domain.CancellationPolicyModerate, now, "late change"))
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		assert.Equal(t, int64(450_000), b.RefundAmountCents)
		assert.Equal(t, domain.PaymentStatusRefunded, b.PaymentStatus)
	})

	t.Run("Second cancel fails", func(t *testing.T) {
		b := moderateBooking(now, 150)
		assert.NoError(t, Cancel(b, domain.CancellationPolicyModerate, now, "first"))
		err := Cancel(b, domain.CancellationPolicyModerate, now, "second")
		assert.ErrorIs(t, err, ErrNotCancellable)
		assert.Equal(t, "first", b.CancellationReason)
	})

	t.Run("Window elapsed", func(t *testing.T) {
		b := moderateBooking(now, 10)
		assert.ErrorIs(t, Cancel(b, domain.CancellationPolicyModerate, now, "too late"), ErrNotCancellable)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	})

	t.Run("Zero refund keeps payment status", func(t *testing.T) {
		b := moderateBooking(now, 50)
		b.TotalAmountCents = 100_000
		b.ServiceFeeCents = 100_000
		assert.NoError(t, Cancel(b, domain.CancellationPolicyModerate, now, "nothing back"))
		assert.Equal(t, int64(0), b.RefundAmountCents)
		assert.Equal(t, domain.PaymentStatusPaid, b.PaymentStatus)
	})
}

func TestLifecycleTransitions(t *testing.T) {
	now := date(2024, 8, 1)

	t.Run("Full happy path", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusPending}
		assert.NoError(t, Confirm(b, now))
		assert.NoError(t, CheckIn(b, now))
		assert.NoError(t, CheckOut(b, now))
		assert.NoError(t, Complete(b))
		assert.Equal(t, domain.BookingStatusCompleted, b.Status)
	})

	t.Run("Terminal states accept nothing", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.BookingStatusCancelled,
			domain.BookingStatusCompleted,
			domain.BookingStatusNoShow,
		} {
			assert.True(t, status.IsTerminal())
			b := &domain.Booking{Status: status}
			assert.ErrorIs(t, CheckIn(b, now), ErrInvalidTransition)
			assert.ErrorIs(t, CheckOut(b, now), ErrInvalidTransition)
			assert.ErrorIs(t, Complete(b), ErrInvalidTransition)
			assert.ErrorIs(t, MarkNoShow(b), ErrInvalidTransition)
		}
	})

	t.Run("No-show reachable from pending and confirmed only", func(t *testing.T) {
		pending := &domain.Booking{Status: domain.BookingStatusPending}
		assert.NoError(t, MarkNoShow(pending))

		confirmed := &domain.Booking{Status: domain.BookingStatusConfirmed}
		assert.NoError(t, MarkNoShow(confirmed))

		checkedIn := &domain.Booking{Status: domain.BookingStatusCheckedIn}
		assert.ErrorIs(t, MarkNoShow(checkedIn), ErrInvalidTransition)
	})

	t.Run("Cannot check in before confirmation", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusPending}
		assert.ErrorIs(t, CheckIn(b, now), ErrInvalidTransition)
	})
}

func TestBookingPredicates(t *testing.T) {
	now := date(2024, 8, 10)

	t.Run("IsConfirmed needs paid status", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}
		assert.True(t, b.IsConfirmed())

		b.PaymentStatus = domain.PaymentStatusPending
		assert.False(t, b.IsConfirmed())
	})

	t.Run("IsActive inside the stay window", func(t *testing.T) {
		b := &domain.Booking{
			Status:       domain.BookingStatusConfirmed,
			CheckInDate:  date(2024, 8, 8),
			CheckOutDate: date(2024, 8, 12),
		}
		assert.True(t, b.IsActive(now))
		assert.False(t, b.IsActive(date(2024, 8, 13)))
		assert.False(t, b.IsActive(date(2024, 8, 7)))
	})

	t.Run("IsCompleted after check-out", func(t *testing.T) {
		b := &domain.Booking{
			Status:       domain.BookingStatusConfirmed,
			CheckInDate:  date(2024, 8, 1),
			CheckOutDate: date(2024, 8, 5),
		}
		assert.True(t, b.IsCompleted(now))
		assert.False(t, b.IsCompleted(date(2024, 8, 3)))

		b.Status = domain.BookingStatusCompleted
		assert.True(t, b.IsCompleted(date(2024, 8, 3)))
	})
}
