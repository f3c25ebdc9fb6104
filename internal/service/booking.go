package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/engine"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/repository"
)

// BookingEngineOptions carries the platform-level booking settings.
type BookingEngineOptions struct {
	Currency          string
	ReferencePrefix   string
	ReferenceAttempts int
	WeekendDays       []time.Weekday
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	availRepo    repository.AvailabilityRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailService
	clock        Clock
	opts         BookingEngineOptions
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	availRepo repository.AvailabilityRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	clock Clock,
	opts BookingEngineOptions,
) BookingService {
	if opts.Currency == "" {
		opts.Currency = "IDR"
	}
	if opts.ReferencePrefix == "" {
		opts.ReferencePrefix = engine.DefaultReferencePrefix
	}
	if opts.ReferenceAttempts <= 0 {
		opts.ReferenceAttempts = 5
	}
	return &bookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		availRepo:    availRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
		clock:        clock,
		opts:         opts,
	}
}

func (s *bookingService) CheckAvailability(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, fmt.Errorf("%w: check-out must be after check-in", engine.ErrInvalidRange)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	overrides, err := s.availRepo.ListBetween(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return engine.IsAvailable(bookings, overrides, checkIn, checkOut), nil
}

func (s *bookingService) QuoteStay(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) (*engine.Quote, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.availRepo.ListBetween(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	quote, err := engine.BuildQuote(property, checkIn, checkOut, overrides, s.opts.WeekendDays)
	if err != nil {
		return nil, err
	}
	quote.Currency = s.opts.Currency
	return quote, nil
}

// CreateBooking quotes the stay, verifies availability, and inserts the
// booking in pending status. The availability check and the insert run in one
// transaction (repository.CreateIfAvailable); the reference is regenerated on
// collision up to the configured retry budget.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.Booking, error) {
	if req.GuestsAdult < 1 {
		return nil, errors.New("booking needs at least one adult guest")
	}
	if req.GuestsChildren < 0 || req.GuestsInfants < 0 || req.GuestsPets < 0 {
		return nil, errors.New("guest counts cannot be negative")
	}

	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.availRepo.ListBetween(ctx, req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if engine.HasBlockedDate(overrides, req.CheckIn, req.CheckOut) {
		return nil, engine.ErrNotAvailable
	}

	quote, err := engine.BuildQuote(property, req.CheckIn, req.CheckOut, overrides, s.opts.WeekendDays)
	if err != nil {
		return nil, err
	}

	guest, err := s.userRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		PropertyID:           req.PropertyID,
		GuestID:              req.GuestID,
		CheckInDate:          req.CheckIn,
		CheckOutDate:         req.CheckOut,
		GuestsAdult:          req.GuestsAdult,
		GuestsChildren:       req.GuestsChildren,
		GuestsInfants:        req.GuestsInfants,
		GuestsPets:           req.GuestsPets,
		TotalNights:          quote.Nights,
		BasePriceCents:       quote.BaseTotalCents,
		WeekendNights:        quote.WeekendNights,
		WeekendPriceCents:    quote.WeekendTotalCents,
		CleaningFeeCents:     quote.CleaningFeeCents,
		ServiceFeeCents:      quote.ServiceFeeCents,
		SecurityDepositCents: quote.SecurityDepositCents,
		TotalAmountCents:     quote.TotalAmountCents,
		Currency:             s.opts.Currency,
		Status:               domain.BookingStatusPending,
		PaymentStatus:        domain.PaymentStatusUnpaid,
		GuestName:            guest.Name,
		GuestEmail:           guest.Email,
		GuestPhone:           guest.Phone,
		SpecialRequests:      req.SpecialRequests,
	}

	for attempt := 0; attempt < s.opts.ReferenceAttempts; attempt++ {
		booking.BookingReference = engine.NewReference(s.opts.ReferencePrefix)
		err = s.bookingRepo.CreateIfAvailable(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateReference) {
			logger.Warn("Booking reference collision, retrying", "attempt", attempt+1)
			continue
		}
		return nil, err
	}
	if errors.Is(err, repository.ErrDuplicateReference) {
		return nil, engine.ErrReferenceCollision
	}

	// Notify the host; failures here never fail the booking.
	if host, hostErr := s.userRepo.GetByID(ctx, property.HostID); hostErr == nil {
		_ = s.emailSvc.SendBookingRequestNotification(ctx, host.Email, guest.Name, property.Title, booking.BookingReference)
		notif := &domain.Notification{
			UserID:  host.ID,
			Title:   "New Booking Request",
			Message: fmt.Sprintf("%s requested %d nights at %s", guest.Name, booking.TotalNights, property.Title),
			Attributes: map[string]string{
				"type":       "BOOKING_REQUEST",
				"booking_id": fmt.Sprintf("%d", booking.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed after payment
// acceptance and notifies the guest.
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := engine.Confirm(booking, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if property, perr := s.propertyRepo.GetByID(ctx, booking.PropertyID); perr == nil {
		_ = s.emailSvc.SendBookingConfirmationNotification(ctx, booking.GuestEmail, property.Title, booking.BookingReference, booking.TotalAmountCents, booking.Currency)
	}
	return booking, nil
}

// CancelBooking runs the cancellation policy for the guest's booking. The
// refund is computed once, against the injected clock, and persisted with a
// compare-and-set so a concurrent cancel cannot double-refund.
func (s *bookingService) CancelBooking(ctx context.Context, guestID, bookingID int64, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != guestID {
		return nil, errors.New("unauthorized")
	}

	property, err := s.propertyRepo.GetByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}

	if err := engine.Cancel(booking, property.CancellationPolicy, s.clock.Now(), reason); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.CancelAtomic(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Booking cancelled",
		"booking_id", booking.ID,
		"reference", booking.BookingReference,
		"refund_cents", booking.RefundAmountCents)

	_ = s.emailSvc.SendBookingCancellationNotification(ctx, booking.GuestEmail, property.Title, booking.BookingReference, booking.RefundAmountCents, booking.Currency)
	if host, hostErr := s.userRepo.GetByID(ctx, property.HostID); hostErr == nil {
		notif := &domain.Notification{
			UserID:  host.ID,
			Title:   "Booking Cancelled",
			Message: fmt.Sprintf("%s cancelled booking %s", booking.GuestName, booking.BookingReference),
			Attributes: map[string]string{
				"type":       "BOOKING_CANCELLED",
				"booking_id": fmt.Sprintf("%d", booking.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return booking, nil
}

func (s *bookingService) CheckInGuest(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return engine.CheckIn(b, s.clock.Now())
	})
}

func (s *bookingService) CheckOutGuest(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return engine.CheckOut(b, s.clock.Now())
	})
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, engine.Complete)
}

func (s *bookingService) transition(ctx context.Context, bookingID int64, apply func(*domain.Booking) error) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := apply(booking); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

func (s *bookingService) ListGuestBookings(ctx context.Context, guestID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID, status, page, pageSize)
}

func (s *bookingService) ListPropertyBookings(ctx context.Context, propertyID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByProperty(ctx, propertyID, status, page, pageSize)
}
