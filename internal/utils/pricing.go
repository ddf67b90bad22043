package utils

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for rental dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// RentalDays returns the number of billable days between start and end under
// half-open interval semantics: any started day counts as a full day, so a
// window shorter than 24 hours still bills one day.
func RentalDays(start, end time.Time) int32 {
	if !start.Before(end) {
		return 0
	}
	return int32(math.Ceil(end.Sub(start).Hours() / 24))
}

// RentalPriceCents computes the rental price as pricePerDay * billable days.
// The result is fixed at quote creation and carried unchanged into the
// reservation.
func RentalPriceCents(pricePerDayCents int32, start, end time.Time) int32 {
	return pricePerDayCents * RentalDays(start, end)
}
