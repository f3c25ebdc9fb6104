package service

import (
	"context"
	"errors"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentTransactionRepository
	bookingRepo repository.BookingRepository
	bookingSvc  BookingService
}

func NewPaymentService(paymentRepo repository.PaymentTransactionRepository, bookingRepo repository.BookingRepository, bookingSvc BookingService) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		bookingSvc:  bookingSvc,
	}
}

// RecordTransaction stores the gateway snapshot and keeps the booking's
// coarse payment_status in sync with it. A successful transaction on a
// pending booking also confirms it.
func (s *paymentService) RecordTransaction(ctx context.Context, tx *domain.PaymentTransaction) (*domain.Booking, error) {
	if tx.BookingID == 0 {
		return nil, errors.New("transaction must reference a booking")
	}

	booking, err := s.bookingRepo.GetByID(ctx, tx.BookingID)
	if err != nil {
		return nil, err
	}
	if tx.Currency == "" {
		tx.Currency = booking.Currency
	}

	if err := s.paymentRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	logger.Info("Payment transaction recorded",
		"booking_id", tx.BookingID,
		"transaction_id", tx.TransactionID,
		"status", tx.Status)

	switch {
	case tx.IsSuccessful():
		if booking.Status == domain.BookingStatusPending {
			return s.bookingSvc.ConfirmBooking(ctx, booking.ID)
		}
		if booking.PaymentStatus != domain.PaymentStatusPaid {
			if tx.GrossAmountCents < booking.TotalAmountCents {
				booking.PaymentStatus = domain.PaymentStatusPartiallyPaid
			} else {
				booking.PaymentStatus = domain.PaymentStatusPaid
			}
			if err := s.bookingRepo.Update(ctx, booking); err != nil {
				return nil, err
			}
		}
	case tx.IsFailed():
		if booking.PaymentStatus == domain.PaymentStatusUnpaid || booking.PaymentStatus == domain.PaymentStatusPending {
			booking.PaymentStatus = domain.PaymentStatusFailed
			if err := s.bookingRepo.Update(ctx, booking); err != nil {
				return nil, err
			}
		}
	case tx.Status == domain.TransactionStatusRefund:
		booking.PaymentStatus = domain.PaymentStatusRefunded
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return nil, err
		}
	case tx.Status == domain.TransactionStatusPending:
		if booking.PaymentStatus == domain.PaymentStatusUnpaid {
			booking.PaymentStatus = domain.PaymentStatusPending
			if err := s.bookingRepo.Update(ctx, booking); err != nil {
				return nil, err
			}
		}
	}

	return booking, nil
}

func (s *paymentService) ListTransactions(ctx context.Context, bookingID int64) ([]domain.PaymentTransaction, error) {
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}
