package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"homestay-booking-backend/internal/service"
)

const dateLayout = "2006-01-02"

// PropertyHandler serves property lookup, availability, and quoting.
type PropertyHandler struct {
	properties service.PropertyService
	bookings   service.BookingService
	reviews    service.ReviewService
}

func NewPropertyHandler(properties service.PropertyService, bookings service.BookingService, reviews service.ReviewService) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		bookings:   bookings,
		reviews:    reviews,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id, err == nil && id > 0
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid property id")
		return
	}

	property, err := h.properties.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid property id")
		return
	}

	checkIn, err := parseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		writeBadRequest(w, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		writeBadRequest(w, "check_out must be YYYY-MM-DD")
		return
	}

	available, err := h.bookings.CheckAvailability(r.Context(), id, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

type quoteRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

func (h *PropertyHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid property id")
		return
	}

	var req quoteRequest
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

	quote, err := h.bookings.QuoteStay(r.Context(), id, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *PropertyHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid property id")
		return
	}

	page, pageSize := pagination(r)
	reviews, total, err := h.reviews.ListPropertyReviews(r.Context(), id, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews": reviews,
		"total":   total,
	})
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
