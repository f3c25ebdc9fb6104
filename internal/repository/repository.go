package repository

import (
	"context"
	"time"

	"homestay-booking-backend/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	ListByHost(ctx context.Context, hostID int64, page, pageSize int32) ([]domain.Property, int32, error)
}

type BookingRepository interface {
	// Create inserts the booking. A duplicate booking reference surfaces as
	// ErrDuplicateReference so the caller can regenerate and retry.
	Create(ctx context.Context, b *domain.Booking) error
	// CreateIfAvailable re-checks availability and inserts the booking in a
	// single transaction, locking the property row. Returns
	// engine.ErrNotAvailable when the dates conflict.
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	// CancelAtomic persists a cancellation with a compare-and-set guarded by
	// the terminal statuses. Returns engine.ErrNotCancellable when another
	// writer got there first.
	CancelAtomic(ctx context.Context, b *domain.Booking) error
	// ListOverlapping returns non-cancelled bookings of the property whose
	// dates touch the given range (inclusive boundaries).
	ListOverlapping(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) ([]domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByProperty(ctx context.Context, propertyID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type PaymentTransactionRepository interface {
	Create(ctx context.Context, tx *domain.PaymentTransaction) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentTransaction, error)
}

type ReviewRepository interface {
	// Create inserts the review; a second review for the same booking
	// surfaces as ErrDuplicateReview (unique constraint on booking_id).
	Create(ctx context.Context, r *domain.Review) error
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error)
	ListByProperty(ctx context.Context, propertyID int64, page, pageSize int32) ([]domain.Review, int32, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, o *domain.AvailabilityOverride) error
	// ListBetween returns overrides for the property with dates in
	// [from, to], inclusive.
	ListBetween(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.AvailabilityOverride, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int64, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
}
