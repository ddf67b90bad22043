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

// OrderHandler serves order submission, order status, and the renter's
// notification feed. Order confirmation itself happens asynchronously in
// the worker; SubmitOrder only persists the batch and returns its id.
type OrderHandler struct {
	orderSvc        service.OrderService
	notificationSvc service.NotificationService
}

func NewOrderHandler(orderSvc service.OrderService, notificationSvc service.NotificationService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, notificationSvc: notificationSvc}
}

type submitOrderQuote struct {
	CompanyName string `json:"company_name"`
	CarTypeName string `json:"car_type_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PriceCents  int32  `json:"price_cents"`
}

type submitOrderRequest struct {
	RenterName  string             `json:"renter_name"`
	RenterEmail string             `json:"renter_email"`
	Quotes      []submitOrderQuote `json:"quotes"`
}

type submitOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// SubmitOrder answers POST /orders. The order is accepted for asynchronous
// confirmation, so the response is 202 with the order id to poll.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.RenterName == "" {
		badRequest(w, "renter_name is required")
		return
	}

	quotes := make([]domain.Quote, 0, len(req.Quotes))
	for _, q := range req.Quotes {
		start, err := utils.ParseDate(q.StartDate)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		end, err := utils.ParseDate(q.EndDate)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		quotes = append(quotes, domain.Quote{
			RenterName:  req.RenterName,
			CompanyName: q.CompanyName,
			CarTypeName: q.CarTypeName,
			StartDate:   start,
			EndDate:     end,
			PriceCents:  q.PriceCents,
		})
	}

	order, err := h.orderSvc.SubmitOrder(r.Context(), req.RenterName, req.RenterEmail, quotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, submitOrderResponse{
		OrderID: order.ID,
		Status:  string(order.Status),
	})
}

// GetOrder answers GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderSvc.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ListOrders answers GET /renters/{renter}/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListOrders(r.Context(), mux.Vars(r)["renter"])
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// GetNotifications answers GET /renters/{renter}/notifications?page=&page_size=
func (h *OrderHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	renter := mux.Vars(r)["renter"]
	page := parseInt32(r.URL.Query().Get("page"), 1)
	pageSize := parseInt32(r.URL.Query().Get("page_size"), 20)

	notifications, total, err := h.notificationSvc.GetNotifications(r.Context(), renter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// MarkNotificationRead answers POST /renters/{renter}/notifications/{id}/read
func (h *OrderHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	renter := mux.Vars(r)["renter"]
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		badRequest(w, "invalid notification id")
		return
	}
	if err := h.notificationSvc.MarkAsRead(r.Context(), renter, int32(id)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func parseInt32(s string, def int32) int32 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 1 {
		return def
	}
	return int32(v)
}
