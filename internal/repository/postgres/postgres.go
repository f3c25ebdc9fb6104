package postgres

import (
	"database/sql"
	"errors"

	"homestay-booking-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PropertyRepository
	repository.BookingRepository
	repository.PaymentTransactionRepository
	repository.ReviewRepository
	repository.AvailabilityRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                           db,
		PropertyRepository:           NewPropertyRepository(db),
		BookingRepository:            NewBookingRepository(db),
		PaymentTransactionRepository: NewPaymentTransactionRepository(db),
		ReviewRepository:             NewReviewRepository(db),
		AvailabilityRepository:       NewAvailabilityRepository(db),
		UserRepository:               NewUserRepository(db),
		NotificationRepository:       NewNotificationRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
