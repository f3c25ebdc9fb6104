package domain

import (
	"fmt"
	"time"
)

type CancellationPolicy string

const (
	CancellationPolicyFlexible    CancellationPolicy = "flexible"
	CancellationPolicyModerate    CancellationPolicy = "moderate"
	CancellationPolicyStrict      CancellationPolicy = "strict"
	CancellationPolicySuperStrict CancellationPolicy = "super_strict"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

type Property struct {
	ID     int64  `json:"id"`
	HostID int64  `json:"host_id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	City   string `json:"city"`
	Region string `json:"region"`

	MaxGuests int32 `json:"max_guests"`

	BasePricePerNightCents    int64 `json:"base_price_per_night_cents"`
	WeekendPricePerNightCents int64 `json:"weekend_price_per_night_cents"`
	CleaningFeeCents          int64 `json:"cleaning_fee_cents"`
	ServiceFeeCents           int64 `json:"service_fee_cents"`
	SecurityDepositCents      int64 `json:"security_deposit_cents"`

	MinimumStayNights int32 `json:"minimum_stay_nights"`
	// MaximumStayNights of zero means no upper bound.
	MaximumStayNights int32 `json:"maximum_stay_nights"`

	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`

	CheckInTime  string `json:"check_in_time"`  // "15:00"
	CheckOutTime string `json:"check_out_time"` // "11:00"

	IsPublished bool           `json:"is_published"`
	Status      PropertyStatus `json:"status"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// ValidateStayBounds checks the minimum/maximum stay configuration.
func (p *Property) ValidateStayBounds() error {
	if p.MinimumStayNights < 1 {
		return fmt.Errorf("minimum stay must be at least 1 night, got %d", p.MinimumStayNights)
	}
	if p.MaximumStayNights != 0 && p.MaximumStayNights < p.MinimumStayNights {
		return fmt.Errorf("maximum stay %d is below minimum stay %d", p.MaximumStayNights, p.MinimumStayNights)
	}
	return nil
}

// AvailabilityOverride is a per-date calendar entry for a property. A date can
// be blocked outright, carry a nightly price that replaces the base/weekend
// rate, or tighten the minimum stay for stays touching it.
type AvailabilityOverride struct {
	ID                  int64     `json:"id"`
	PropertyID          int64     `json:"property_id"`
	Date                time.Time `json:"date"`
	IsAvailable         bool      `json:"is_available"`
	PriceOverrideCents  int64     `json:"price_override_cents,omitempty"`
	MinimumStayOverride int32     `json:"minimum_stay_override,omitempty"`
	Notes               string    `json:"notes,omitempty"`
}
