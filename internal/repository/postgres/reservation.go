package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (renter_name, company_name, car_type_name, car_id, start_date, end_date, price_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.RenterName, rv.CompanyName, rv.CarTypeName, rv.CarID, rv.StartDate, rv.EndDate, rv.PriceCents, time.Now()).Scan(&rv.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT id, renter_name, company_name, car_type_name, car_id, start_date, end_date, price_cents, created_on
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rv.ID, &rv.RenterName, &rv.CompanyName, &rv.CarTypeName, &rv.CarID, &rv.StartDate, &rv.EndDate, &rv.PriceCents, &rv.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64, renterName string) error {
	query := `DELETE FROM reservations WHERE id = $1 AND renter_name = $2`
	result, err := r.db.ExecContext(ctx, query, id, renterName)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterName string) ([]domain.Reservation, error) {
	query := `SELECT id, renter_name, company_name, car_type_name, car_id, start_date, end_date, price_cents, created_on
	          FROM reservations WHERE renter_name = $1 ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, renterName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListOverlapping applies the exact half-open overlap predicate:
// NOT (existing.end <= start OR existing.start >= end). Scoped to one
// company so a car-id collision at another company never excludes a car.
func (r *reservationRepository) ListOverlapping(ctx context.Context, companyName string, start, end time.Time) ([]domain.Reservation, error) {
	query := `SELECT id, renter_name, company_name, car_type_name, car_id, start_date, end_date, price_cents, created_on
	          FROM reservations WHERE company_name = $1 AND start_date < $3 AND end_date > $2`
	rows, err := r.db.QueryContext(ctx, query, companyName, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(&rv.ID, &rv.RenterName, &rv.CompanyName, &rv.CarTypeName, &rv.CarID, &rv.StartDate, &rv.EndDate, &rv.PriceCents, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}
