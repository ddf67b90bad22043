package service

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type companyService struct {
	store repository.Store
}

func NewCompanyService(store repository.Store) CompanyService {
	return &companyService{store: store}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]string, error) {
	return s.store.Companies().ListNames(ctx)
}

func (s *companyService) ListCarTypes(ctx context.Context, companyName string) ([]domain.CarType, error) {
	if _, err := s.store.Companies().GetByName(ctx, companyName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownCompany
		}
		return nil, err
	}
	return s.store.Companies().ListCarTypes(ctx, companyName)
}
