package engine

import (
	"time"

	"homestay-booking-backend/internal/domain"
)

// Overlaps reports whether an existing booking [bIn, bOut] conflicts with a
// candidate range [checkIn, checkOut]. Boundaries are inclusive: a booking
// checking out on the day the candidate checks in is a conflict, so same-day
// turnover is not permitted.
func Overlaps(bIn, bOut, checkIn, checkOut time.Time) bool {
	if withinInclusive(bIn, checkIn, checkOut) {
		return true
	}
	if withinInclusive(bOut, checkIn, checkOut) {
		return true
	}
	// Existing booking fully spans the candidate.
	return !bIn.After(checkIn) && !bOut.Before(checkOut)
}

func withinInclusive(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// HasConflict reports whether any non-cancelled booking in the list conflicts
// with the candidate range. Callers normally pass bookings pre-filtered by a
// date-range query; cancelled rows are re-filtered here so that a wider query
// still yields the right answer.
func HasConflict(bookings []domain.Booking, checkIn, checkOut time.Time) bool {
	for i := range bookings {
		b := &bookings[i]
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		if Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// HasBlockedDate reports whether any calendar override blocks a night of the
// stay. Nights run [checkIn, checkOut): the check-out date itself is not a
// night spent at the property.
func HasBlockedDate(overrides []domain.AvailabilityOverride, checkIn, checkOut time.Time) bool {
	for i := range overrides {
		o := &overrides[i]
		if o.IsAvailable {
			continue
		}
		if !o.Date.Before(checkIn) && o.Date.Before(checkOut) {
			return true
		}
	}
	return false
}

// IsAvailable combines booking conflicts and calendar blocks into the single
// availability answer for a candidate range. It is pure; re-evaluating it
// inside the booking-creation transaction is the caller's responsibility.
func IsAvailable(bookings []domain.Booking, overrides []domain.AvailabilityOverride, checkIn, checkOut time.Time) bool {
	if !checkOut.After(checkIn) {
		return false
	}
	if HasConflict(bookings, checkIn, checkOut) {
		return false
	}
	return !HasBlockedDate(overrides, checkIn, checkOut)
}
