package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.CarRentalCompany) error
	GetByName(ctx context.Context, name string) (*domain.CarRentalCompany, error)
	ListNames(ctx context.Context) ([]string, error)

	// Car types offered by a company
	CreateCarType(ctx context.Context, carType *domain.CarType) error
	GetCarType(ctx context.Context, companyName, carTypeName string) (*domain.CarType, error)
	ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	// ListByCompany returns the company's fleet ordered by car id; an empty
	// carTypeName returns cars of every type.
	ListByCompany(ctx context.Context, companyName, carTypeName string) ([]domain.Car, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64, renterName string) error
	ListByRenter(ctx context.Context, renterName string) ([]domain.Reservation, error)
	// ListOverlapping returns every reservation of the company whose window
	// overlaps [start, end) under half-open semantics.
	ListOverlapping(ctx context.Context, companyName string, start, end time.Time) ([]domain.Reservation, error)
}

// OrderRepository persists quote batches and doubles as the task queue for
// the confirmation worker: DequeuePending claims rows for one delivery,
// MarkConfirmed/MarkFailed acknowledge them and Release puts a row back for
// a later redelivery.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByRenter(ctx context.Context, renterName string) ([]domain.Order, error)
	DequeuePending(ctx context.Context, limit int32) ([]domain.Order, error)
	MarkConfirmed(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, reason string) error
	Release(ctx context.Context, id, reason string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByRenter(ctx context.Context, renterName string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32, renterName string) error
}

// Store aggregates the repositories backed by one database handle. InTx runs
// fn against a store scoped to a single serializable transaction; the
// transaction commits when fn returns nil and rolls back otherwise. The
// confirmation coordinator relies on this as its only point of mutual
// exclusion.
type Store interface {
	Companies() CompanyRepository
	Cars() CarRepository
	Reservations() ReservationRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
	InTx(ctx context.Context, fn func(Store) error) error
}
