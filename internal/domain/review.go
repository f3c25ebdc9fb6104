package domain

import "time"

// Review is a guest's review of a completed stay. At most one review exists
// per booking; the bookings table reference is unique at the storage layer.
type Review struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
	Rating     int32     `json:"rating"` // 1..5
	Comment    string    `json:"comment,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
}
