package http

import (
	"encoding/json"
	"net/http"

	"homestay-booking-backend/internal/service"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	bookings service.BookingService
	reviews  service.ReviewService
}

func NewBookingHandler(bookings service.BookingService, reviews service.ReviewService) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		reviews:  reviews,
	}
}

type createBookingRequest struct {
	PropertyID      int64  `json:"property_id"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	GuestsAdult     int32  `json:"guests_adult"`
	GuestsChildren  int32  `json:"guests_children"`
	GuestsInfants   int32  `json:"guests_infants"`
	GuestsPets      int32  `json:"guests_pets"`
	SpecialRequests string `json:"special_requests"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		writeBadRequest(w, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		writeBadRequest(w, "check_out must be YYYY-MM-DD")
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), &service.CreateBookingRequest{
		PropertyID:      req.PropertyID,
		GuestID:         claims.UserID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestsAdult:     req.GuestsAdult,
		GuestsChildren:  req.GuestsChildren,
		GuestsInfants:   req.GuestsInfants,
		GuestsPets:      req.GuestsPets,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if booking.GuestID != claims.UserID && !claims.IsHost() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok || !claims.IsHost() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "host role required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.ConfirmBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	var req cancelBookingRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	booking, err := h.bookings.CancelBooking(r.Context(), claims.UserID, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok || !claims.IsHost() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "host role required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.CheckInGuest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok || !claims.IsHost() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "host role required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.CheckOutGuest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	bookings, total, err := h.bookings.ListGuestBookings(r.Context(), claims.UserID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"total":    total,
	})
}

type submitReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

func (h *BookingHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid booking id")
		return
	}

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	review, err := h.reviews.SubmitReview(r.Context(), claims.UserID, id, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
