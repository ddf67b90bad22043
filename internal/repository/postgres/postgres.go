package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// against the shared pool or inside one transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db   *sql.DB
	dbtx DBTX

	companies     repository.CompanyRepository
	cars          repository.CarRepository
	reservations  repository.ReservationRepository
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, dbtx DBTX) *Store {
	return &Store{
		db:            db,
		dbtx:          dbtx,
		companies:     NewCompanyRepository(dbtx),
		cars:          NewCarRepository(dbtx),
		reservations:  NewReservationRepository(dbtx),
		orders:        NewOrderRepository(dbtx),
		notifications: NewNotificationRepository(dbtx),
	}
}

func (s *Store) Companies() repository.CompanyRepository          { return s.companies }
func (s *Store) Cars() repository.CarRepository                   { return s.cars }
func (s *Store) Reservations() repository.ReservationRepository   { return s.reservations }
func (s *Store) Orders() repository.OrderRepository               { return s.orders }
func (s *Store) Notifications() repository.NotificationRepository { return s.notifications }

// InTx runs fn against a store bound to one serializable transaction.
// Serializable isolation is what turns concurrent confirmations racing for
// the same car into an explicit abort on one side instead of a double
// booking.
func (s *Store) InTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return &domain.TransientStoreError{Err: err}
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx)); err != nil {
		return MapError(err)
	}
	if err := tx.Commit(); err != nil {
		return MapError(err)
	}
	return nil
}

// MapError translates driver-level failures into the domain taxonomy.
// Terminal business errors pass through untouched; a serialization failure
// or deadlock means two confirmations raced and is surfaced as a
// reservation conflict; everything else is infrastructure and retryable.
func MapError(err error) error {
	if err == nil || domain.IsTerminal(err) || domain.IsTransient(err) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return domain.ErrReservationConflict
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return &domain.TransientStoreError{Err: err}
}
