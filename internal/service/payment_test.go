package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/service"
)

func TestPaymentService_RecordTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)

	pendingBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:               5,
			PropertyID:       2,
			GuestID:          1,
			BookingReference: "KNJAAAABBBBCCCCD",
			GuestEmail:       "guest@test.com",
			TotalAmountCents: 1_250_000,
			Currency:         "IDR",
			Status:           domain.BookingStatusPending,
			PaymentStatus:    domain.PaymentStatusUnpaid,
		}
	}

	newPaymentFixture := func(f *bookingFixture) (service.PaymentService, *MockPaymentRepo) {
		paymentRepo := new(MockPaymentRepo)
		return service.NewPaymentService(paymentRepo, f.bookingRepo, f.svc), paymentRepo
	}

	t.Run("Settlement Confirms Pending Booking", func(t *testing.T) {
		f := newBookingFixture(now)
		svc, paymentRepo := newPaymentFixture(f)

		booking := pendingBooking()
		f.bookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentTransaction")).Return(nil)
		f.bookingRepo.On("Update", ctx, booking).Return(nil)
		f.propertyRepo.On("GetByID", ctx, int64(2)).Return(testVilla(), nil)
		f.emailSvc.On("SendBookingConfirmationNotification", ctx, "guest@test.com", "Villa Kenja", "KNJAAAABBBBCCCCD", int64(1_250_000), "IDR").Return(nil)

		tx := &domain.PaymentTransaction{
			BookingID:        5,
			TransactionID:    "mt-001",
			OrderID:          "KNJAAAABBBBCCCCD",
			PaymentType:      "bank_transfer",
			GrossAmountCents: 1_250_000,
			Status:           domain.TransactionStatusSettlement,
		}
		res, err := svc.RecordTransaction(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
		assert.Equal(t, domain.PaymentStatusPaid, res.PaymentStatus)
		assert.Equal(t, "IDR", tx.Currency) // filled from the booking
	})

	t.Run("Partial Capture On Confirmed Booking", func(t *testing.T) {
		f := newBookingFixture(now)
		svc, paymentRepo := newPaymentFixture(f)

		booking := pendingBooking()
		booking.Status = domain.BookingStatusConfirmed
		booking.PaymentStatus = domain.PaymentStatusPending
		f.bookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentTransaction")).Return(nil)
		f.bookingRepo.On("Update", ctx, booking).Return(nil)

		tx := &domain.PaymentTransaction{
			BookingID:        5,
			TransactionID:    "mt-002",
			GrossAmountCents: 500_000,
			Status:           domain.TransactionStatusCapture,
		}
		res, err := svc.RecordTransaction(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPartiallyPaid, res.PaymentStatus)
	})

	t.Run("Denied Payment Marks Failed", func(t *testing.T) {
		f := newBookingFixture(now)
		svc, paymentRepo := newPaymentFixture(f)

		booking := pendingBooking()
		f.bookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentTransaction")).Return(nil)
		f.bookingRepo.On("Update", ctx, booking).Return(nil)

		tx := &domain.PaymentTransaction{
			BookingID: 5,
			Status:    domain.TransactionStatusDeny,
		}
		res, err := svc.RecordTransaction(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, res.PaymentStatus)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
	})

	t.Run("Refund Transaction", func(t *testing.T) {
		f := newBookingFixture(now)
		svc, paymentRepo := newPaymentFixture(f)

		booking := pendingBooking()
		booking.Status = domain.BookingStatusCancelled
		booking.PaymentStatus = domain.PaymentStatusPaid
		f.bookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentTransaction")).Return(nil)
		f.bookingRepo.On("Update", ctx, booking).Return(nil)

		tx := &domain.PaymentTransaction{
			BookingID: 5,
			Status:    domain.TransactionStatusRefund,
		}
		res, err := svc.RecordTransaction(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, res.PaymentStatus)
	})

	t.Run("Missing Booking Reference", func(t *testing.T) {
		f := newBookingFixture(now)
		svc, _ := newPaymentFixture(f)

		res, err := svc.RecordTransaction(ctx, &domain.PaymentTransaction{})
		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestReviewService_SubmitReview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)

	completedBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:           5,
			PropertyID:   2,
			GuestID:      1,
			CheckInDate:  time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC),
			Status:       domain.BookingStatusCompleted,
		}
	}

	t.Run("Success", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReviewService(reviewRepo, bookingRepo, fixedClock{now: now})

		bookingRepo.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)
		reviewRepo.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)

		review, err := svc.SubmitReview(ctx, 1, 5, 5, "Great stay")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), review.PropertyID)
		assert.Equal(t, int32(5), review.Rating)
	})

	t.Run("Stay Not Finished", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReviewService(reviewRepo, bookingRepo, fixedClock{now: now})

		booking := completedBooking()
		booking.Status = domain.BookingStatusCheckedIn
		bookingRepo.On("GetByID", ctx, int64(5)).Return(booking, nil)

		review, err := svc.SubmitReview(ctx, 1, 5, 4, "")
		assert.Error(t, err)
		assert.Nil(t, review)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rating Out Of Range", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReviewService(reviewRepo, bookingRepo, fixedClock{now: now})

		review, err := svc.SubmitReview(ctx, 1, 5, 6, "")
		assert.Error(t, err)
		assert.Nil(t, review)
	})

	t.Run("Not The Booking Guest", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := service.NewReviewService(reviewRepo, bookingRepo, fixedClock{now: now})

		bookingRepo.On("GetByID", ctx, int64(5)).Return(completedBooking(), nil)

		review, err := svc.SubmitReview(ctx, 99, 5, 4, "")
		assert.Error(t, err)
		assert.Nil(t, review)
	})
}
