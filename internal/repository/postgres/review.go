package postgres

import (
	"context"
	"database/sql"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (booking_id, property_id, guest_id, rating, comment, created_on)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rev.BookingID, rev.PropertyID, rev.GuestID, rev.Rating, rev.Comment, now,
	).Scan(&rev.ID)
	if err != nil {
		// reviews.booking_id carries the one-review-per-booking constraint.
		if isUniqueViolation(err) {
			return repository.ErrDuplicateReview
		}
		return err
	}
	rev.CreatedOn = now
	return nil
}

func (r *reviewRepository) GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	query := `SELECT id, booking_id, property_id, guest_id, rating, comment, created_on
		FROM reviews WHERE booking_id = $1`
	rev := &domain.Review{}
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&rev.ID, &rev.BookingID, &rev.PropertyID, &rev.GuestID, &rev.Rating, &rev.Comment, &rev.CreatedOn,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rev, nil
}

func (r *reviewRepository) ListByProperty(ctx context.Context, propertyID int64, page, pageSize int32) ([]domain.Review, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reviews WHERE property_id = $1`, propertyID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, booking_id, property_id, guest_id, rating, comment, created_on
		FROM reviews WHERE property_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, propertyID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.BookingID, &rev.PropertyID, &rev.GuestID, &rev.Rating, &rev.Comment, &rev.CreatedOn); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, count, rows.Err()
}
