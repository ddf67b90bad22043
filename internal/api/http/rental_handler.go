package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"

	"github.com/gorilla/mux"
)

// RentalHandler serves quote creation and the renter's reservation views.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createQuoteRequest struct {
	RenterName  string `json:"renter_name"`
	CarTypeName string `json:"car_type_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// CreateQuote answers POST /companies/{company}/quotes
func (h *RentalHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	company := mux.Vars(r)["company"]

	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.RenterName == "" {
		badRequest(w, "renter_name is required")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	quote, err := h.rentalSvc.CreateQuote(r.Context(), company, req.RenterName, domain.ReservationConstraints{
		CarTypeName: req.CarTypeName,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// ListReservations answers GET /renters/{renter}/reservations
func (h *RentalHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	renter := mux.Vars(r)["renter"]
	reservations, err := h.rentalSvc.ListReservations(r.Context(), renter)
	if err != nil {
		writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": reservations})
}

// CancelReservation answers DELETE /reservations/{id}?renter=
func (h *RentalHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		badRequest(w, "invalid reservation id")
		return
	}
	renter := r.URL.Query().Get("renter")
	if renter == "" {
		badRequest(w, "renter query parameter is required")
		return
	}

	if err := h.rentalSvc.CancelReservation(r.Context(), renter, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
