package postgres

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type companyRepository struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.CarRentalCompany) error {
	query := `INSERT INTO companies (name, created_on) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, c.Name, time.Now())
	return err
}

func (r *companyRepository) GetByName(ctx context.Context, name string) (*domain.CarRentalCompany, error) {
	c := &domain.CarRentalCompany{}
	var createdOn time.Time
	query := `SELECT name, created_on FROM companies WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&c.Name, &createdOn)
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}

func (r *companyRepository) ListNames(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM companies ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *companyRepository) CreateCarType(ctx context.Context, ct *domain.CarType) error {
	query := `INSERT INTO car_types (company_name, name, nb_of_seats, trunk_space, smoking_allowed, price_per_day_cents)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, ct.CompanyName, ct.Name, ct.NbOfSeats, ct.TrunkSpace, ct.SmokingAllowed, ct.PricePerDayCents)
	return err
}

func (r *companyRepository) GetCarType(ctx context.Context, companyName, carTypeName string) (*domain.CarType, error) {
	ct := &domain.CarType{}
	query := `SELECT company_name, name, nb_of_seats, trunk_space, smoking_allowed, price_per_day_cents
	          FROM car_types WHERE company_name = $1 AND name = $2`
	err := r.db.QueryRowContext(ctx, query, companyName, carTypeName).
		Scan(&ct.CompanyName, &ct.Name, &ct.NbOfSeats, &ct.TrunkSpace, &ct.SmokingAllowed, &ct.PricePerDayCents)
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func (r *companyRepository) ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error) {
	query := `SELECT company_name, name, nb_of_seats, trunk_space, smoking_allowed, price_per_day_cents
	          FROM car_types WHERE company_name = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, companyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.CarType
	for rows.Next() {
		var ct domain.CarType
		if err := rows.Scan(&ct.CompanyName, &ct.Name, &ct.NbOfSeats, &ct.TrunkSpace, &ct.SmokingAllowed, &ct.PricePerDayCents); err != nil {
			return nil, err
		}
		types = append(types, ct)
	}
	return types, rows.Err()
}
