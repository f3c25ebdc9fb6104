package service

import (
	"context"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/engine"
)

// Clock supplies the current time. Policy and lifecycle decisions never read
// the wall clock directly; they go through an injected Clock so they stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CreateBookingRequest carries everything needed to book a stay.
type CreateBookingRequest struct {
	PropertyID      int64
	GuestID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	GuestsAdult     int32
	GuestsChildren  int32
	GuestsInfants   int32
	GuestsPets      int32
	SpecialRequests string
}

type BookingService interface {
	// CheckAvailability answers whether the property is free for the range.
	// The answer is advisory: CreateBooking re-checks inside its transaction.
	CheckAvailability(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (bool, error)
	QuoteStay(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (*engine.Quote, error)
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, guestID, bookingID int64, reason string) (*domain.Booking, error)
	CheckInGuest(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CheckOutGuest(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListGuestBookings(ctx context.Context, guestID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListPropertyBookings(ctx context.Context, propertyID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type PropertyService interface {
	AddProperty(ctx context.Context, p *domain.Property) error
	UpdateProperty(ctx context.Context, p *domain.Property) error
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
	ListHostProperties(ctx context.Context, hostID int64, page, pageSize int32) ([]domain.Property, int32, error)
	SetAvailabilityOverride(ctx context.Context, o *domain.AvailabilityOverride) error
	GetCalendar(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.AvailabilityOverride, error)
}

type PaymentService interface {
	// RecordTransaction stores a gateway transaction snapshot, projects it
	// onto the booking's payment status, and confirms the booking when the
	// gateway reports success.
	RecordTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.Booking, error)
	ListTransactions(ctx context.Context, bookingID int64) ([]domain.PaymentTransaction, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, guestID, bookingID int64, rating int32, comment string) (*domain.Review, error)
	GetReviewForBooking(ctx context.Context, bookingID int64) (*domain.Review, error)
	ListPropertyReviews(ctx context.Context, propertyID int64, page, pageSize int32) ([]domain.Review, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, hostEmail, guestName, propertyTitle, reference string) error
	SendBookingConfirmationNotification(ctx context.Context, guestEmail, propertyTitle, reference string, totalAmountCents int64, currency string) error
	SendBookingCancellationNotification(ctx context.Context, guestEmail, propertyTitle, reference string, refundCents int64, currency string) error
	SendCheckInReminder(ctx context.Context, guestEmail, guestName, propertyTitle, reference, checkInTime string) error
}
