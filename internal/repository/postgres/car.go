package postgres

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db DBTX
}

func NewCarRepository(db DBTX) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (id, company_name, car_type_name) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.CompanyName, c.CarTypeName)
	return err
}

func (r *carRepository) ListByCompany(ctx context.Context, companyName, carTypeName string) ([]domain.Car, error) {
	// Ascending id order feeds the allocator's deterministic lowest-id pick.
	query := `SELECT id, company_name, car_type_name FROM cars WHERE company_name = $1`
	args := []interface{}{companyName}
	if carTypeName != "" {
		query += ` AND car_type_name = $2`
		args = append(args, carTypeName)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.CarTypeName); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
