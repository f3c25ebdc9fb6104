package service

import (
	"context"
	"errors"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	clock       Clock
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookingRepo repository.BookingRepository, clock Clock) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, guestID, bookingID int64, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != guestID {
		return nil, errors.New("unauthorized")
	}
	if !booking.IsCompleted(s.clock.Now()) && booking.Status != domain.BookingStatusCheckedOut {
		return nil, errors.New("only completed stays can be reviewed")
	}

	review := &domain.Review{
		BookingID:  bookingID,
		PropertyID: booking.PropertyID,
		GuestID:    guestID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReviewForBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	return s.reviewRepo.GetByBooking(ctx, bookingID)
}

func (s *reviewService) ListPropertyReviews(ctx context.Context, propertyID int64, page, pageSize int32) ([]domain.Review, int32, error) {
	return s.reviewRepo.ListByProperty(ctx, propertyID, page, pageSize)
}
