package http

import (
	"net/http"

	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"

	"github.com/gorilla/mux"
)

// CompanyHandler serves the read-only company catalog: names, car types and
// availability.
type CompanyHandler struct {
	companySvc service.CompanyService
	rentalSvc  service.RentalService
}

func NewCompanyHandler(companySvc service.CompanyService, rentalSvc service.RentalService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc, rentalSvc: rentalSvc}
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	names, err := h.companySvc.ListCompanies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"companies": names})
}

func (h *CompanyHandler) ListCarTypes(w http.ResponseWriter, r *http.Request) {
	company := mux.Vars(r)["company"]
	types, err := h.companySvc.ListCarTypes(r.Context(), company)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"car_types": types})
}

// Availability answers GET /companies/{company}/availability?type=&start=&end=
func (h *CompanyHandler) Availability(w http.ResponseWriter, r *http.Request) {
	company := mux.Vars(r)["company"]
	carType := r.URL.Query().Get("type")

	start, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	end, err := utils.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	carIDs, err := h.rentalSvc.AvailableCars(r.Context(), company, carType, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	if carIDs == nil {
		carIDs = []int32{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"car_ids": carIDs})
}
