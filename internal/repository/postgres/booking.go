package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/engine"
	"homestay-booking-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, property_id, guest_id, booking_reference, check_in_date, check_out_date,
	guests_adult, guests_children, guests_infants, guests_pets,
	total_nights, base_price_cents, weekend_nights, weekend_price_cents,
	cleaning_fee_cents, service_fee_cents, security_deposit_cents, total_amount_cents, currency,
	status, payment_status, guest_name, guest_email, guest_phone, special_requests,
	confirmed_at, cancelled_at, cancellation_reason, refund_amount_cents,
	actual_check_in_time, actual_check_out_time, created_on, updated_on`

func scanBooking(row interface{ Scan(...interface{}) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(
		&b.ID, &b.PropertyID, &b.GuestID, &b.BookingReference, &b.CheckInDate, &b.CheckOutDate,
		&b.GuestsAdult, &b.GuestsChildren, &b.GuestsInfants, &b.GuestsPets,
		&b.TotalNights, &b.BasePriceCents, &b.WeekendNights, &b.WeekendPriceCents,
		&b.CleaningFeeCents, &b.ServiceFeeCents, &b.SecurityDepositCents, &b.TotalAmountCents, &b.Currency,
		&b.Status, &b.PaymentStatus, &b.GuestName, &b.GuestEmail, &b.GuestPhone, &b.SpecialRequests,
		&b.ConfirmedAt, &b.CancelledAt, &b.CancellationReason, &b.RefundAmountCents,
		&b.ActualCheckInTime, &b.ActualCheckOutTime, &b.CreatedOn, &b.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

const insertBookingQuery = `INSERT INTO bookings (property_id, guest_id, booking_reference, check_in_date, check_out_date,
	guests_adult, guests_children, guests_infants, guests_pets,
	total_nights, base_price_cents, weekend_nights, weekend_price_cents,
	cleaning_fee_cents, service_fee_cents, security_deposit_cents, total_amount_cents, currency,
	status, payment_status, guest_name, guest_email, guest_phone, special_requests, created_on, updated_on)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	RETURNING id`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx, insertBookingQuery,
		b.PropertyID, b.GuestID, b.BookingReference, b.CheckInDate, b.CheckOutDate,
		b.GuestsAdult, b.GuestsChildren, b.GuestsInfants, b.GuestsPets,
		b.TotalNights, b.BasePriceCents, b.WeekendNights, b.WeekendPriceCents,
		b.CleaningFeeCents, b.ServiceFeeCents, b.SecurityDepositCents, b.TotalAmountCents, b.Currency,
		b.Status, b.PaymentStatus, b.GuestName, b.GuestEmail, b.GuestPhone, b.SpecialRequests, now, now,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateReference
		}
		return err
	}
	b.CreatedOn = now
	b.UpdatedOn = now
	return nil
}

// CreateIfAvailable is the atomic availability-check-plus-insert required at
// confirmation time. The property row is locked for the duration of the
// transaction so two concurrent requests cannot both observe "available".
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var propertyID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM properties WHERE id = $1 FOR UPDATE`, b.PropertyID).Scan(&propertyID)
	if err != nil {
		return mapNotFound(err)
	}

	var conflicts int
	err = tx.QueryRowContext(ctx, `SELECT count(*) FROM bookings
		WHERE property_id = $1 AND status != 'cancelled'
		  AND (check_in_date BETWEEN $2 AND $3
		       OR check_out_date BETWEEN $2 AND $3
		       OR (check_in_date <= $2 AND check_out_date >= $3))`,
		b.PropertyID, b.CheckInDate, b.CheckOutDate,
	).Scan(&conflicts)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return engine.ErrNotAvailable
	}

	now := time.Now()
	err = tx.QueryRowContext(ctx, insertBookingQuery,
		b.PropertyID, b.GuestID, b.BookingReference, b.CheckInDate, b.CheckOutDate,
		b.GuestsAdult, b.GuestsChildren, b.GuestsInfants, b.GuestsPets,
		b.TotalNights, b.BasePriceCents, b.WeekendNights, b.WeekendPriceCents,
		b.CleaningFeeCents, b.ServiceFeeCents, b.SecurityDepositCents, b.TotalAmountCents, b.Currency,
		b.Status, b.PaymentStatus, b.GuestName, b.GuestEmail, b.GuestPhone, b.SpecialRequests, now, now,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateReference
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	b.CreatedOn = now
	b.UpdatedOn = now
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, reference))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, payment_status=$2, confirmed_at=$3, cancelled_at=$4,
		cancellation_reason=$5, refund_amount_cents=$6, actual_check_in_time=$7, actual_check_out_time=$8,
		updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		b.Status, b.PaymentStatus, b.ConfirmedAt, b.CancelledAt,
		b.CancellationReason, b.RefundAmountCents, b.ActualCheckInTime, b.ActualCheckOutTime,
		time.Now(), b.ID)
	return err
}

// CancelAtomic persists the cancellation computed by the engine. The WHERE
// clause excludes terminal statuses, so a concurrent cancel or completion
// makes this a no-op reported as ErrNotCancellable.
func (r *bookingRepository) CancelAtomic(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status='cancelled', payment_status=$1, cancelled_at=$2,
		cancellation_reason=$3, refund_amount_cents=$4, updated_on=$5
		WHERE id=$6 AND status NOT IN ('cancelled', 'completed', 'no_show')`
	res, err := r.db.ExecContext(ctx, query,
		b.PaymentStatus, b.CancelledAt, b.CancellationReason, b.RefundAmountCents, time.Now(), b.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return engine.ErrNotCancellable
	}
	return nil
}

func (r *bookingRepository) ListOverlapping(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE property_id = $1 AND status != 'cancelled'
		  AND (check_in_date BETWEEN $2 AND $3
		       OR check_out_date BETWEEN $2 AND $3
		       OR (check_in_date <= $2 AND check_out_date >= $3))
		ORDER BY check_in_date`
	rows, err := r.db.QueryContext(ctx, query, propertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByGuest(ctx context.Context, guestID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "guest_id", guestID, status, page, pageSize)
}

func (r *bookingRepository) ListByProperty(ctx context.Context, propertyID int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, "property_id", propertyID, status, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, column string, id int64, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	base := `FROM bookings WHERE ` + column + ` = $1`
	args := []interface{}{id}
	argIdx := 2
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d", bookingColumns, base, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}
