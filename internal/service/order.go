package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"

	"github.com/google/uuid"
)

type orderService struct {
	store repository.Store
}

func NewOrderService(store repository.Store) OrderService {
	return &orderService{store: store}
}

// SubmitOrder persists the renter's quote batch as a PENDING order and
// returns immediately; the confirmation worker picks it up asynchronously.
func (s *orderService) SubmitOrder(ctx context.Context, renterName, renterEmail string, quotes []domain.Quote) (*domain.Order, error) {
	if renterName == "" || len(quotes) == 0 {
		return nil, domain.ErrMalformedOrder
	}
	for i := range quotes {
		if !quotes[i].StartDate.Before(quotes[i].EndDate) {
			return nil, domain.ErrInvalidPeriod
		}
		// The order owns every quote in it regardless of who asked for the
		// original estimate.
		quotes[i].RenterName = renterName
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		RenterName:  renterName,
		RenterEmail: renterEmail,
		Quotes:      quotes,
		Status:      domain.OrderStatusPending,
	}
	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order submitted", "order_id", order.ID, "renter", renterName, "quotes", len(quotes))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.store.Orders().GetByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, renterName string) ([]domain.Order, error) {
	return s.store.Orders().ListByRenter(ctx, renterName)
}
