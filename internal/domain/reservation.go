package domain

import "time"

// Reservation is the durable, binding assignment of one car to one renter
// for a [StartDate, EndDate) window. Created only by a successful batch
// confirmation and never mutated afterwards; cancellation removes the row.
type Reservation struct {
	ID          int64     `json:"id"`
	RenterName  string    `json:"renter_name"`
	CompanyName string    `json:"company_name"`
	CarTypeName string    `json:"car_type_name"`
	CarID       int32     `json:"car_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PriceCents  int32     `json:"price_cents"`
	CreatedOn   time.Time `json:"created_on"`
}

// Overlaps reports whether the reservation's window shares at least one day
// with [start, end) under half-open interval semantics.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !(r.EndDate.Before(start) || r.EndDate.Equal(start) ||
		r.StartDate.After(end) || r.StartDate.Equal(end))
}
