package domain

import (
	"errors"
	"fmt"
)

// Business failures are terminal: they are reported to the renter and never
// retried automatically. Infrastructure failures are wrapped in
// TransientStoreError and retried by the worker's redelivery loop.
var (
	ErrUnknownCompany      = errors.New("unknown rental company")
	ErrUnknownCarType      = errors.New("unknown car type")
	ErrNoAvailability      = errors.New("no cars available to satisfy the given constraints")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrMalformedOrder      = errors.New("malformed order payload")
	ErrInvalidPeriod       = errors.New("start date must be before end date")
)

// TransientStoreError marks a store failure that is safe to retry: the
// confirmation transaction rolled back without committing anything.
type TransientStoreError struct {
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("transient store failure: %v", e.Err)
}

func (e *TransientStoreError) Unwrap() error { return e.Err }

// IsTransient reports whether err should be redelivered rather than
// surfaced to the renter.
func IsTransient(err error) bool {
	var te *TransientStoreError
	return errors.As(err, &te)
}

// IsTerminal reports whether err is a business-rule failure that must not
// be retried.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrUnknownCompany) ||
		errors.Is(err, ErrUnknownCarType) ||
		errors.Is(err, ErrNoAvailability) ||
		errors.Is(err, ErrReservationConflict) ||
		errors.Is(err, ErrMalformedOrder) ||
		errors.Is(err, ErrInvalidPeriod)
}
