package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	payload, err := json.Marshal(o.Quotes)
	if err != nil {
		return err
	}
	query := `INSERT INTO orders (id, renter_name, renter_email, quotes, status, attempts, last_error, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	_, err = r.db.ExecContext(ctx, query, o.ID, o.RenterName, o.RenterEmail, payload, o.Status, o.Attempts, o.LastError, now, now)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, renter_name, renter_email, quotes, status, attempts, last_error, created_on, updated_on
	          FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRowContext(ctx, query, id))
}

func (r *orderRepository) ListByRenter(ctx context.Context, renterName string) ([]domain.Order, error) {
	query := `SELECT id, renter_name, renter_email, quotes, status, attempts, last_error, created_on, updated_on
	          FROM orders WHERE renter_name = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, renterName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// DequeuePending claims up to limit pending orders for one delivery.
// FOR UPDATE SKIP LOCKED keeps concurrent workers from claiming the same
// order while one delivery is in flight; the bumped attempt count survives
// even if the worker dies before acknowledging, so delivery is
// at-least-once.
func (r *orderRepository) DequeuePending(ctx context.Context, limit int32) ([]domain.Order, error) {
	query := `UPDATE orders SET attempts = attempts + 1, updated_on = $2
	          WHERE id IN (
	              SELECT id FROM orders WHERE status = 'PENDING'
	              ORDER BY created_on
	              FOR UPDATE SKIP LOCKED
	              LIMIT $1
	          )
	          RETURNING id, renter_name, renter_email, quotes, status, attempts, last_error, created_on, updated_on`
	rows, err := r.db.QueryContext(ctx, query, limit, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if len(orders) > 0 {
		logger.Debug("Dequeued pending orders", "count", len(orders))
	}
	return orders, rows.Err()
}

func (r *orderRepository) MarkConfirmed(ctx context.Context, id string) error {
	query := `UPDATE orders SET status = 'CONFIRMED', last_error = '', updated_on = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	return err
}

func (r *orderRepository) MarkFailed(ctx context.Context, id, reason string) error {
	query := `UPDATE orders SET status = 'FAILED', last_error = $2, updated_on = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, reason, time.Now())
	return err
}

func (r *orderRepository) Release(ctx context.Context, id, reason string) error {
	query := `UPDATE orders SET status = 'PENDING', last_error = $2, updated_on = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, reason, time.Now())
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	return scanOrderRow(row)
}

func scanOrderRow(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	if err := row.Scan(&o.ID, &o.RenterName, &o.RenterEmail, &o.Payload, &o.Status, &o.Attempts, &o.LastError, &o.CreatedOn, &o.UpdatedOn); err != nil {
		return nil, err
	}
	// Decode lazily so one corrupted payload cannot poison a whole dequeue
	// batch; callers that need the quotes use DecodeQuotes.
	if quotes, err := o.DecodeQuotes(); err == nil {
		o.Quotes = quotes
	}
	return o, nil
}
