package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"homestay-booking-backend/internal/security"
	"homestay-booking-backend/internal/service"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Bookings      service.BookingService
	Properties    service.PropertyService
	Payments      service.PaymentService
	Reviews       service.ReviewService
	Notifications service.NotificationService
	Tokens        security.TokenManager
}

// NewRouter builds the API router. Everything under /api/v1 requires a Bearer
// token except the payment gateway callback.
func NewRouter(deps RouterDeps) *mux.Router {
	propertyHandler := NewPropertyHandler(deps.Properties, deps.Bookings, deps.Reviews)
	bookingHandler := NewBookingHandler(deps.Bookings, deps.Reviews)
	paymentHandler := NewPaymentHandler(deps.Payments, deps.Bookings)
	notificationHandler := NewNotificationHandler(deps.Notifications)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Gateway callback authenticates via its own signature, not our tokens.
	router.HandleFunc("/api/v1/payments/notify", paymentHandler.Notify).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(deps.Tokens))

	api.HandleFunc("/properties/{id}", propertyHandler.Get).Methods("GET")
	api.HandleFunc("/properties/{id}/availability", propertyHandler.CheckAvailability).Methods("GET")
	api.HandleFunc("/properties/{id}/quote", propertyHandler.Quote).Methods("POST")
	api.HandleFunc("/properties/{id}/reviews", propertyHandler.ListReviews).Methods("GET")

	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods("GET")
	api.HandleFunc("/bookings/{id}/confirm", bookingHandler.Confirm).Methods("POST")
	api.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")
	api.HandleFunc("/bookings/{id}/checkin", bookingHandler.CheckIn).Methods("POST")
	api.HandleFunc("/bookings/{id}/checkout", bookingHandler.CheckOut).Methods("POST")
	api.HandleFunc("/bookings/{id}/review", bookingHandler.SubmitReview).Methods("POST")
	api.HandleFunc("/my/bookings", bookingHandler.ListMine).Methods("GET")

	api.HandleFunc("/my/notifications", notificationHandler.List).Methods("GET")
	api.HandleFunc("/my/notifications/{id}/read", notificationHandler.MarkAsRead).Methods("POST")

	return router
}
