package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted || s == BookingStatusNoShow
}

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
	PaymentStatusFailed        PaymentStatus = "failed"
)

type Booking struct {
	ID               int64  `json:"id"`
	PropertyID       int64  `json:"property_id"`
	GuestID          int64  `json:"guest_id"`
	BookingReference string `json:"booking_reference"`

	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`

	GuestsAdult    int32 `json:"guests_adult"`
	GuestsChildren int32 `json:"guests_children"`
	GuestsInfants  int32 `json:"guests_infants"`
	GuestsPets     int32 `json:"guests_pets"`

	// Pricing snapshot — captured from the property quote at creation time.
	// Refund and payment math always uses these values, not live property prices.
	TotalNights          int32  `json:"total_nights"`
	BasePriceCents       int64  `json:"base_price_cents"`
	WeekendNights        int32  `json:"weekend_nights"`
	WeekendPriceCents    int64  `json:"weekend_price_cents"`
	CleaningFeeCents     int64  `json:"cleaning_fee_cents"`
	ServiceFeeCents      int64  `json:"service_fee_cents"`
	SecurityDepositCents int64  `json:"security_deposit_cents"`
	TotalAmountCents     int64  `json:"total_amount_cents"`
	Currency             string `json:"currency"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`

	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	RefundAmountCents  int64      `json:"refund_amount_cents"`

	ActualCheckInTime  *time.Time `json:"actual_check_in_time,omitempty"`
	ActualCheckOutTime *time.Time `json:"actual_check_out_time,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// TotalGuests counts everyone staying, pets excluded.
func (b *Booking) TotalGuests() int32 {
	return b.GuestsAdult + b.GuestsChildren + b.GuestsInfants
}

// IsConfirmed reports whether the booking is confirmed and fully paid.
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed && b.PaymentStatus == PaymentStatusPaid
}

// IsActive reports whether the guest is currently staying at the given time.
func (b *Booking) IsActive(now time.Time) bool {
	if b.Status != BookingStatusConfirmed && b.Status != BookingStatusCheckedIn {
		return false
	}
	return !now.Before(b.CheckInDate) && !now.After(b.CheckOutDate)
}

// IsCompleted reports whether the stay is over: either explicitly completed,
// or still marked confirmed with the check-out date already behind us.
func (b *Booking) IsCompleted(now time.Time) bool {
	if b.Status == BookingStatusCompleted {
		return true
	}
	return b.Status == BookingStatusConfirmed && now.After(b.CheckOutDate)
}
