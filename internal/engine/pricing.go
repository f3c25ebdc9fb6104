package engine

import (
	"fmt"
	"time"

	"homestay-booking-backend/internal/domain"
)

// DefaultWeekendDays are the nights billed at the weekend rate when the
// platform does not configure its own set.
var DefaultWeekendDays = []time.Weekday{time.Friday, time.Saturday}

// Quote is the pricing breakdown for a prospective stay. TotalAmountCents is
// what the guest pays up front; the security deposit is held separately and
// never included in the total.
type Quote struct {
	Nights               int32  `json:"nights"`
	WeekendNights        int32  `json:"weekend_nights"`
	BaseTotalCents       int64  `json:"base_total_cents"`
	WeekendTotalCents    int64  `json:"weekend_total_cents"`
	CleaningFeeCents     int64  `json:"cleaning_fee_cents"`
	ServiceFeeCents      int64  `json:"service_fee_cents"`
	SecurityDepositCents int64  `json:"security_deposit_cents"`
	TotalAmountCents     int64  `json:"total_amount_cents"`
	Currency             string `json:"currency"`
}

// Nights returns the number of nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int32 {
	return int32(checkOut.Sub(checkIn).Hours() / 24)
}

// BuildQuote prices a stay at the given property. Nights run over
// [checkIn, checkOut); each night is billed at the calendar override price if
// one exists for that date, else the weekend rate when the night falls on a
// weekend day and the property has one, else the base rate.
//
// Fails with ErrInvalidRange when the range is reversed or empty, shorter
// than the minimum stay (including per-date overrides touching the stay), or
// longer than the maximum stay.
func BuildQuote(p *domain.Property, checkIn, checkOut time.Time, overrides []domain.AvailabilityOverride, weekendDays []time.Weekday) (*Quote, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidRange)
	}
	nights := Nights(checkIn, checkOut)

	minStay := p.MinimumStayNights
	for i := range overrides {
		o := &overrides[i]
		if o.MinimumStayOverride > minStay && nightWithinStay(o.Date, checkIn, checkOut) {
			minStay = o.MinimumStayOverride
		}
	}
	if nights < minStay {
		return nil, fmt.Errorf("%w: stay of %d nights is below the minimum of %d", ErrInvalidRange, nights, minStay)
	}
	if p.MaximumStayNights != 0 && nights > p.MaximumStayNights {
		return nil, fmt.Errorf("%w: stay of %d nights exceeds the maximum of %d", ErrInvalidRange, nights, p.MaximumStayNights)
	}

	if len(weekendDays) == 0 {
		weekendDays = DefaultWeekendDays
	}
	priceByDate := make(map[string]int64, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		if o.PriceOverrideCents > 0 {
			priceByDate[dateKey(o.Date)] = o.PriceOverrideCents
		}
	}

	q := &Quote{
		Nights:               nights,
		CleaningFeeCents:     p.CleaningFeeCents,
		ServiceFeeCents:      p.ServiceFeeCents,
		SecurityDepositCents: p.SecurityDepositCents,
	}

	var stayTotal int64
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		if override, ok := priceByDate[dateKey(night)]; ok {
			stayTotal += override
			continue
		}
		if p.WeekendPricePerNightCents > 0 && isWeekend(night.Weekday(), weekendDays) {
			q.WeekendNights++
			q.WeekendTotalCents += p.WeekendPricePerNightCents
			stayTotal += p.WeekendPricePerNightCents
			continue
		}
		q.BaseTotalCents += p.BasePricePerNightCents
		stayTotal += p.BasePricePerNightCents
	}

	q.TotalAmountCents = stayTotal + p.CleaningFeeCents + p.ServiceFeeCents
	return q, nil
}

func isWeekend(d time.Weekday, weekendDays []time.Weekday) bool {
	for _, w := range weekendDays {
		if d == w {
			return true
		}
	}
	return false
}

func nightWithinStay(date, checkIn, checkOut time.Time) bool {
	return !date.Before(checkIn) && date.Before(checkOut)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
