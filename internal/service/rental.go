package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type rentalService struct {
	store repository.Store
}

func NewRentalService(store repository.Store) RentalService {
	return &rentalService{store: store}
}

// carKey identifies one physical car. The company name is part of the key
// because car ids are only unique within a company.
type carKey struct {
	company string
	id      int32
}

func (s *rentalService) AvailableCars(ctx context.Context, companyName, carTypeName string, start, end time.Time) ([]int32, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidPeriod
	}
	return availableCars(ctx, s.store, companyName, carTypeName, start, end)
}

// availableCars computes allCars - reservedCars for the window [start, end).
// It runs against whatever store it is handed, so the confirmation
// coordinator can evaluate availability inside its own transaction. The
// result is ordered by ascending car id. Unknown companies and car types
// simply yield an empty set.
func availableCars(ctx context.Context, store repository.Store, companyName, carTypeName string, start, end time.Time) ([]int32, error) {
	cars, err := store.Cars().ListByCompany(ctx, companyName, carTypeName)
	if err != nil {
		return nil, err
	}

	overlapping, err := store.Reservations().ListOverlapping(ctx, companyName, start, end)
	if err != nil {
		return nil, err
	}

	reserved := make(map[carKey]bool, len(overlapping))
	for _, rv := range overlapping {
		// The query is scoped to one company, but the company check stays
		// explicit: a reservation may only exclude a car its own company
		// owns, never a colliding id at another company.
		reserved[carKey{company: rv.CompanyName, id: rv.CarID}] = true
	}

	var available []int32
	for _, car := range cars {
		if !reserved[carKey{company: car.CompanyName, id: car.ID}] {
			available = append(available, car.ID)
		}
	}
	return available, nil
}

func (s *rentalService) CreateQuote(ctx context.Context, companyName, renterName string, constraints domain.ReservationConstraints) (*domain.Quote, error) {
	if !constraints.StartDate.Before(constraints.EndDate) {
		return nil, domain.ErrInvalidPeriod
	}

	if _, err := s.store.Companies().GetByName(ctx, companyName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownCompany
		}
		return nil, err
	}

	carType, err := s.store.Companies().GetCarType(ctx, companyName, constraints.CarTypeName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownCarType
		}
		return nil, err
	}

	available, err := availableCars(ctx, s.store, companyName, constraints.CarTypeName, constraints.StartDate, constraints.EndDate)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, domain.ErrNoAvailability
	}

	return &domain.Quote{
		RenterName:  renterName,
		CompanyName: companyName,
		CarTypeName: constraints.CarTypeName,
		StartDate:   constraints.StartDate,
		EndDate:     constraints.EndDate,
		PriceCents:  utils.RentalPriceCents(carType.PricePerDayCents, constraints.StartDate, constraints.EndDate),
	}, nil
}

// pickCar selects the car for one quote inside the confirmation
// transaction. Availability only sees committed reservations, so claimed
// carries the cars already taken by earlier quotes of the same batch;
// without it two quotes in one order could land on the same car. Among the
// remaining candidates the lowest id wins, which keeps confirmation
// reproducible.
func pickCar(ctx context.Context, store repository.Store, quote domain.Quote, claimed map[carKey]bool) (int32, error) {
	available, err := availableCars(ctx, store, quote.CompanyName, quote.CarTypeName, quote.StartDate, quote.EndDate)
	if err != nil {
		return 0, err
	}
	for _, id := range available {
		if !claimed[carKey{company: quote.CompanyName, id: id}] {
			return id, nil
		}
	}
	return 0, domain.ErrNoAvailability
}

func (s *rentalService) ConfirmQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Reservation, error) {
	if len(quotes) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	var reservations []domain.Reservation
	err := s.store.InTx(ctx, func(tx repository.Store) error {
		var txErr error
		reservations, txErr = confirmQuotes(ctx, tx, quotes)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *rentalService) ConfirmOrder(ctx context.Context, order *domain.Order) ([]domain.Reservation, error) {
	quotes, err := order.DecodeQuotes()
	if err != nil {
		return nil, err
	}

	var reservations []domain.Reservation
	err = s.store.InTx(ctx, func(tx repository.Store) error {
		var txErr error
		reservations, txErr = confirmQuotes(ctx, tx, quotes)
		if txErr != nil {
			return txErr
		}
		// Acknowledging inside the same transaction makes confirmation
		// idempotent under at-least-once delivery: either the reservations
		// and the CONFIRMED status commit together or neither does.
		return tx.Orders().MarkConfirmed(ctx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// confirmQuotes is the batch confirmation loop: allocate a car per quote in
// order, staging each reservation in the surrounding transaction. Any
// failure aborts the whole batch.
func confirmQuotes(ctx context.Context, tx repository.Store, quotes []domain.Quote) ([]domain.Reservation, error) {
	claimed := make(map[carKey]bool, len(quotes))
	reservations := make([]domain.Reservation, 0, len(quotes))

	for _, quote := range quotes {
		if !quote.StartDate.Before(quote.EndDate) {
			return nil, domain.ErrInvalidPeriod
		}

		carID, err := pickCar(ctx, tx, quote, claimed)
		if err != nil {
			return nil, err
		}

		reservation := domain.Reservation{
			RenterName:  quote.RenterName,
			CompanyName: quote.CompanyName,
			CarTypeName: quote.CarTypeName,
			CarID:       carID,
			StartDate:   quote.StartDate,
			EndDate:     quote.EndDate,
			PriceCents:  quote.PriceCents,
		}
		if err := tx.Reservations().Create(ctx, &reservation); err != nil {
			return nil, err
		}

		claimed[carKey{company: quote.CompanyName, id: carID}] = true
		reservations = append(reservations, reservation)
	}

	logger.Debug("Confirmed quote batch", "reservations", len(reservations))
	return reservations, nil
}

func (s *rentalService) ListReservations(ctx context.Context, renterName string) ([]domain.Reservation, error) {
	return s.store.Reservations().ListByRenter(ctx, renterName)
}

func (s *rentalService) CancelReservation(ctx context.Context, renterName string, reservationID int64) error {
	err := s.store.Reservations().Delete(ctx, reservationID, renterName)
	if err != nil {
		return err
	}
	logger.Info("Reservation cancelled", "reservation_id", reservationID, "renter", renterName)
	return nil
}
