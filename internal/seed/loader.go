// Package seed loads a sample fleet into an empty store from CSV files.
// Each CSV row describes one car type and how many cars of it the company
// owns: name, seats, trunk space, price per day, smoking allowed, count.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

// LoadIfEmpty seeds every *.csv file in dir as one company (file name =
// company name) when no company exists yet, so restarts never duplicate the
// fleet.
func LoadIfEmpty(ctx context.Context, store repository.Store, dir string) error {
	names, err := store.Companies().ListNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing companies: %w", err)
	}
	if len(names) > 0 {
		logger.Debug("Seed data already present, skipping", "companies", len(names))
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return err
	}
	for _, file := range files {
		companyName := strings.TrimSuffix(filepath.Base(file), ".csv")
		if err := loadCompany(ctx, store, companyName, file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

func loadCompany(ctx context.Context, store repository.Store, companyName, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}

	err = store.InTx(ctx, func(tx repository.Store) error {
		if err := tx.Companies().Create(ctx, &domain.CarRentalCompany{Name: companyName}); err != nil {
			return err
		}

		carID := int32(1)
		for _, rec := range records {
			carType, count, err := parseRow(companyName, rec)
			if err != nil {
				return err
			}
			if err := tx.Companies().CreateCarType(ctx, carType); err != nil {
				return err
			}
			for i := int32(0); i < count; i++ {
				car := &domain.Car{ID: carID, CompanyName: companyName, CarTypeName: carType.Name}
				if err := tx.Cars().Create(ctx, car); err != nil {
					return err
				}
				carID++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded rental company", "company", companyName, "file", file)
	return nil
}

// parseRow reads one "name,seats,trunk,price,smoking,count" record. The
// price column is dollars and may carry decimals; it is stored as cents.
func parseRow(companyName string, rec []string) (*domain.CarType, int32, error) {
	if len(rec) != 6 {
		return nil, 0, fmt.Errorf("expected 6 fields, got %d", len(rec))
	}

	seats, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 32)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid seat count %q: %w", rec[1], err)
	}
	trunk, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid trunk space %q: %w", rec[2], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid price %q: %w", rec[3], err)
	}
	smoking, err := strconv.ParseBool(strings.TrimSpace(rec[4]))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid smoking flag %q: %w", rec[4], err)
	}
	count, err := strconv.ParseInt(strings.TrimSpace(rec[5]), 10, 32)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid car count %q: %w", rec[5], err)
	}

	carType := &domain.CarType{
		CompanyName:      companyName,
		Name:             strings.TrimSpace(rec[0]),
		NbOfSeats:        int32(seats),
		TrunkSpace:       int32(math.Round(trunk)),
		SmokingAllowed:   smoking,
		PricePerDayCents: int32(math.Round(price * 100)),
	}
	return carType, int32(count), nil
}
