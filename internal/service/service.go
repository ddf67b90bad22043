package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]string, error)
	ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error)
}

type RentalService interface {
	// AvailableCars returns the ids of cars of the company not reserved in
	// any window overlapping [start, end). An empty carTypeName means all
	// types.
	AvailableCars(ctx context.Context, companyName, carTypeName string, start, end time.Time) ([]int32, error)
	// CreateQuote prices the renter's constraints against current
	// availability without taking any lock.
	CreateQuote(ctx context.Context, companyName, renterName string, constraints domain.ReservationConstraints) (*domain.Quote, error)
	// ConfirmQuotes converts a batch of quotes into reservations inside one
	// transaction: either every quote becomes a reservation or none does.
	ConfirmQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Reservation, error)
	// ConfirmOrder confirms the order's quote batch and acknowledges the
	// order row in the same transaction, so a redelivered order is never
	// confirmed twice.
	ConfirmOrder(ctx context.Context, order *domain.Order) ([]domain.Reservation, error)
	ListReservations(ctx context.Context, renterName string) ([]domain.Reservation, error)
	CancelReservation(ctx context.Context, renterName string, reservationID int64) error
}

type OrderService interface {
	SubmitOrder(ctx context.Context, renterName, renterEmail string, quotes []domain.Quote) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, renterName string) ([]domain.Order, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, renterName string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, renterName string, notificationID int32) error
}

type EmailService interface {
	SendOrderConfirmedNotification(ctx context.Context, email, renterName, orderID string, reservations []domain.Reservation) error
	SendOrderFailedNotification(ctx context.Context, email, renterName, orderID, reason string) error
}
