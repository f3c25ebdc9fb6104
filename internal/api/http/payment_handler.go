package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/service"
)

// PaymentHandler receives payment gateway notification callbacks.
type PaymentHandler struct {
	payments service.PaymentService
	bookings service.BookingService
}

func NewPaymentHandler(payments service.PaymentService, bookings service.BookingService) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		bookings: bookings,
	}
}

// gatewayNotification mirrors the gateway's callback payload. The order ID
// carries the booking reference; gross_amount arrives as a decimal string.
type gatewayNotification struct {
	TransactionID     string `json:"transaction_id"`
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	GrossAmount       string `json:"gross_amount"`
	Currency          string `json:"currency"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
}

func (h *PaymentHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var note gatewayNotification
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeBadRequest(w, "invalid notification payload")
		return
	}
	if note.OrderID == "" || note.TransactionStatus == "" {
		writeBadRequest(w, "order_id and transaction_status are required")
		return
	}

	booking, err := h.bookings.GetBookingByReference(r.Context(), note.OrderID)
	if err != nil {
		writeError(w, err)
		return
	}

	grossCents, err := parseAmountCents(note.GrossAmount)
	if err != nil {
		writeBadRequest(w, "invalid gross_amount")
		return
	}

	tx := &domain.PaymentTransaction{
		BookingID:        booking.ID,
		TransactionID:    note.TransactionID,
		OrderID:          note.OrderID,
		PaymentType:      note.PaymentType,
		GrossAmountCents: grossCents,
		Currency:         note.Currency,
		Status:           domain.TransactionStatus(note.TransactionStatus),
		FraudStatus:      note.FraudStatus,
		StatusCode:       note.StatusCode,
	}

	updated, err := h.payments.RecordTransaction(r.Context(), tx)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Info("Gateway notification processed",
		"reference", note.OrderID,
		"transaction_status", note.TransactionStatus,
		"payment_status", updated.PaymentStatus)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseAmountCents converts the gateway's decimal string ("1250000.00") into
// minor units without going through floating point. Amounts are never
// negative on the wire.
func parseAmountCents(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	cents := units * 100
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
		cents += f
	}
	return cents, nil
}
