package postgres

import (
	"context"
	"database/sql"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type paymentTransactionRepository struct {
	db *sql.DB
}

func NewPaymentTransactionRepository(db *sql.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

func (r *paymentTransactionRepository) Create(ctx context.Context, t *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (booking_id, transaction_id, order_id, payment_type,
		gross_amount_cents, currency, transaction_status, fraud_status, status_code,
		transaction_time, settlement_time, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		t.BookingID, t.TransactionID, t.OrderID, t.PaymentType,
		t.GrossAmountCents, t.Currency, t.Status, t.FraudStatus, t.StatusCode,
		t.TransactionTime, t.SettlementTime, now,
	).Scan(&t.ID)
	if err != nil {
		return err
	}
	t.CreatedOn = now
	return nil
}

func (r *paymentTransactionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentTransaction, error) {
	query := `SELECT id, booking_id, transaction_id, order_id, payment_type,
		gross_amount_cents, currency, transaction_status, fraud_status, status_code,
		transaction_time, settlement_time, created_on
		FROM payment_transactions WHERE booking_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.PaymentTransaction
	for rows.Next() {
		var t domain.PaymentTransaction
		if err := rows.Scan(
			&t.ID, &t.BookingID, &t.TransactionID, &t.OrderID, &t.PaymentType,
			&t.GrossAmountCents, &t.Currency, &t.Status, &t.FraudStatus, &t.StatusCode,
			&t.TransactionTime, &t.SettlementTime, &t.CreatedOn,
		); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
