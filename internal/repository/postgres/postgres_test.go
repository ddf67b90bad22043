package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestStore_InTx(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status = 'CONFIRMED'").
			WithArgs("o-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		store := postgres.NewStore(db)
		err = store.InTx(ctx, func(tx repository.Store) error {
			return tx.Orders().MarkConfirmed(ctx, "o-1")
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		store := postgres.NewStore(db)
		err = store.InTx(ctx, func(tx repository.Store) error {
			return domain.ErrNoAvailability
		})
		assert.ErrorIs(t, err, domain.ErrNoAvailability)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Serialization failure maps to reservation conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		store := postgres.NewStore(db)
		err = store.InTx(ctx, func(tx repository.Store) error {
			return &pq.Error{Code: "40001"}
		})
		assert.ErrorIs(t, err, domain.ErrReservationConflict)
	})
}

func TestMapError(t *testing.T) {
	t.Run("Terminal errors pass through", func(t *testing.T) {
		assert.ErrorIs(t, postgres.MapError(domain.ErrNoAvailability), domain.ErrNoAvailability)
		assert.ErrorIs(t, postgres.MapError(domain.ErrMalformedOrder), domain.ErrMalformedOrder)
	})

	t.Run("No rows passes through", func(t *testing.T) {
		assert.ErrorIs(t, postgres.MapError(sql.ErrNoRows), sql.ErrNoRows)
	})

	t.Run("Deadlock maps to reservation conflict", func(t *testing.T) {
		assert.ErrorIs(t, postgres.MapError(&pq.Error{Code: "40P01"}), domain.ErrReservationConflict)
	})

	t.Run("Other driver errors are transient", func(t *testing.T) {
		err := postgres.MapError(errors.New("connection reset"))
		assert.True(t, domain.IsTransient(err))
		assert.False(t, domain.IsTerminal(err))
	})

	t.Run("Already transient is not rewrapped", func(t *testing.T) {
		orig := &domain.TransientStoreError{Err: errors.New("timeout")}
		assert.Equal(t, error(orig), postgres.MapError(orig))
	})
}
