package engine

import (
	"time"

	"homestay-booking-backend/internal/domain"
)

// Full-refund thresholds per policy, in hours before check-in. Inside these
// windows the refund steps down through the tiers in RefundPercent; the
// booking stays cancellable until its last tier closes.
const (
	flexibleCancelHours    = 24
	moderateCancelHours    = 120 // 5 days
	strictCancelHours      = 336 // 14 days
	strictHalfRefundHours  = 168 // 7 days
	superStrictCancelHours = 720 // 30 days
)

// HoursBeforeCheckIn is the signed hour distance from now to check-in,
// negative once check-in has passed.
func HoursBeforeCheckIn(b *domain.Booking, now time.Time) float64 {
	return b.CheckInDate.Sub(now).Hours()
}

// CanCancel reports whether the booking may still be cancelled under the
// property's cancellation policy at the given time. Terminal bookings are
// never cancellable; otherwise cancellation is open exactly as long as the
// policy still grants some refund percentage.
func CanCancel(b *domain.Booking, policy domain.CancellationPolicy, now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}
	return RefundPercent(policy, HoursBeforeCheckIn(b, now)) > 0
}

// RefundPercent returns the refund percentage for a cancellation the given
// number of hours before check-in. Moderate and strict step down to a 50%
// refund inside windows where full refunds are no longer given; once the last
// tier closes the percentage is 0 and the booking is no longer cancellable.
func RefundPercent(policy domain.CancellationPolicy, hoursBeforeCheckIn float64) int32 {
	switch policy {
	case domain.CancellationPolicyFlexible:
		if hoursBeforeCheckIn >= flexibleCancelHours {
			return 100
		}
		return 0
	case domain.CancellationPolicyModerate:
		if hoursBeforeCheckIn >= moderateCancelHours {
			return 100
		}
		if hoursBeforeCheckIn >= flexibleCancelHours {
			return 50
		}
		return 0
	case domain.CancellationPolicyStrict:
		if hoursBeforeCheckIn >= strictCancelHours {
			return 100
		}
		if hoursBeforeCheckIn >= strictHalfRefundHours {
			return 50
		}
		return 0
	case domain.CancellationPolicySuperStrict:
		if hoursBeforeCheckIn >= superStrictCancelHours {
			return 50
		}
		return 0
	default:
		if hoursBeforeCheckIn >= flexibleCancelHours {
			return 100
		}
		return 0
	}
}

// RefundAmount computes the refund for cancelling the booking at the given
// time. The service fee is never refunded. Terminal bookings always refund 0;
// anything else gets the tier percentage of the refundable base.
func RefundAmount(b *domain.Booking, policy domain.CancellationPolicy, now time.Time) int64 {
	if b.Status.IsTerminal() {
		return 0
	}

	percent := RefundPercent(policy, HoursBeforeCheckIn(b, now))
	refundable := b.TotalAmountCents - b.ServiceFeeCents
	if refundable < 0 {
		refundable = 0
	}
	return refundable * int64(percent) / 100
}
