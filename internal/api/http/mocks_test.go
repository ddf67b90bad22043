package http

import (
	"context"
	"time"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockCompanyService) ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarType), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) AvailableCars(ctx context.Context, companyName, carTypeName string, start, end time.Time) ([]int32, error) {
	args := m.Called(ctx, companyName, carTypeName, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockRentalService) CreateQuote(ctx context.Context, companyName, renterName string, constraints domain.ReservationConstraints) (*domain.Quote, error) {
	args := m.Called(ctx, companyName, renterName, constraints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockRentalService) ConfirmQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Reservation, error) {
	args := m.Called(ctx, quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockRentalService) ConfirmOrder(ctx context.Context, order *domain.Order) ([]domain.Reservation, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockRentalService) ListReservations(ctx context.Context, renterName string) ([]domain.Reservation, error) {
	args := m.Called(ctx, renterName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockRentalService) CancelReservation(ctx context.Context, renterName string, reservationID int64) error {
	args := m.Called(ctx, renterName, reservationID)
	return args.Error(0)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) SubmitOrder(ctx context.Context, renterName, renterEmail string, quotes []domain.Quote) (*domain.Order, error) {
	args := m.Called(ctx, renterName, renterEmail, quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, renterName string) ([]domain.Order, error) {
	args := m.Called(ctx, renterName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, renterName string, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, renterName, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, renterName string, notificationID int32) error {
	args := m.Called(ctx, renterName, notificationID)
	return args.Error(0)
}
