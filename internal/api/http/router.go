package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route onto a gorilla mux router.
func NewRouter(companyHandler *CompanyHandler, rentalHandler *RentalHandler, orderHandler *OrderHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/companies", companyHandler.ListCompanies).Methods("GET")
	api.HandleFunc("/companies/{company}/cartypes", companyHandler.ListCarTypes).Methods("GET")
	api.HandleFunc("/companies/{company}/availability", companyHandler.Availability).Methods("GET")
	api.HandleFunc("/companies/{company}/quotes", rentalHandler.CreateQuote).Methods("POST")

	api.HandleFunc("/orders", orderHandler.SubmitOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", orderHandler.GetOrder).Methods("GET")

	api.HandleFunc("/renters/{renter}/orders", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/renters/{renter}/reservations", rentalHandler.ListReservations).Methods("GET")
	api.HandleFunc("/renters/{renter}/notifications", orderHandler.GetNotifications).Methods("GET")
	api.HandleFunc("/renters/{renter}/notifications/{id}/read", orderHandler.MarkNotificationRead).Methods("POST")

	api.HandleFunc("/reservations/{id}", rentalHandler.CancelReservation).Methods("DELETE")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}
