package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusCapture    TransactionStatus = "capture"
	TransactionStatusSettlement TransactionStatus = "settlement"
	TransactionStatusDeny       TransactionStatus = "deny"
	TransactionStatusCancel     TransactionStatus = "cancel"
	TransactionStatusExpire     TransactionStatus = "expire"
	TransactionStatusFailure    TransactionStatus = "failure"
	TransactionStatusRefund     TransactionStatus = "refund"
)

// PaymentTransaction is a snapshot of one gateway transaction. The booking's
// payment_status is a coarse projection of these rows, updated whenever a
// transaction is recorded.
type PaymentTransaction struct {
	ID               int64             `json:"id"`
	BookingID        int64             `json:"booking_id"`
	TransactionID    string            `json:"transaction_id"`
	OrderID          string            `json:"order_id"`
	PaymentType      string            `json:"payment_type"`
	GrossAmountCents int64             `json:"gross_amount_cents"`
	Currency         string            `json:"currency"`
	Status           TransactionStatus `json:"transaction_status"`
	FraudStatus      string            `json:"fraud_status,omitempty"`
	StatusCode       string            `json:"status_code,omitempty"`
	TransactionTime  *time.Time        `json:"transaction_time,omitempty"`
	SettlementTime   *time.Time        `json:"settlement_time,omitempty"`
	CreatedOn        time.Time         `json:"created_on"`
}

// IsSuccessful reports whether the gateway accepted the payment.
func (t *PaymentTransaction) IsSuccessful() bool {
	return t.Status == TransactionStatusCapture || t.Status == TransactionStatusSettlement
}

// IsFailed reports whether the gateway rejected or abandoned the payment.
func (t *PaymentTransaction) IsFailed() bool {
	switch t.Status {
	case TransactionStatusDeny, TransactionStatusCancel, TransactionStatusExpire, TransactionStatusFailure:
		return true
	}
	return false
}
