package domain

import "time"

// ReservationConstraints are the renter's requirements for a quote.
type ReservationConstraints struct {
	CarTypeName string    `json:"car_type_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Quote is an unpersisted, priced reservation request. It is advisory: no
// car or lock is held between quote creation and confirmation, so a racing
// confirmation elsewhere can invalidate it.
type Quote struct {
	RenterName  string    `json:"renter_name"`
	CompanyName string    `json:"company_name"`
	CarTypeName string    `json:"car_type_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PriceCents  int32     `json:"price_cents"`
}
