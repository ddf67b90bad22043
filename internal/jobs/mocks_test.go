package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByRenter(ctx context.Context, renterName string) ([]domain.Order, error) {
	args := m.Called(ctx, renterName)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) DequeuePending(ctx context.Context, limit int32) ([]domain.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) MarkConfirmed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepo) MarkFailed(ctx context.Context, id, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
func (m *MockOrderRepo) Release(ctx context.Context, id, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) ListByRenter(ctx context.Context, renterName string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, renterName, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32, renterName string) error {
	args := m.Called(ctx, id, renterName)
	return args.Error(0)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) AvailableCars(ctx context.Context, companyName, carTypeName string, start, end time.Time) ([]int32, error) {
	args := m.Called(ctx, companyName, carTypeName, start, end)
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
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockRentalService) CancelReservation(ctx context.Context, renterName string, reservationID int64) error {
	args := m.Called(ctx, renterName, reservationID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOrderConfirmedNotification(ctx context.Context, email, renterName, orderID string, reservations []domain.Reservation) error {
	args := m.Called(ctx, email, renterName, orderID, reservations)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderFailedNotification(ctx context.Context, email, renterName, orderID, reason string) error {
	args := m.Called(ctx, email, renterName, orderID, reason)
	return args.Error(0)
}

// stubStore exposes the two repositories the worker touches. The remaining
// accessors are never exercised by these tests.
type stubStore struct {
	orders *MockOrderRepo
	notes  *MockNotificationRepo
}

func (s *stubStore) Companies() repository.CompanyRepository          { panic("not used") }
func (s *stubStore) Cars() repository.CarRepository                   { panic("not used") }
func (s *stubStore) Reservations() repository.ReservationRepository   { panic("not used") }
func (s *stubStore) Orders() repository.OrderRepository               { return s.orders }
func (s *stubStore) Notifications() repository.NotificationRepository { return s.notes }
func (s *stubStore) InTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
