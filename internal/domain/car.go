package domain

// Car is one physical car in a company's fleet. Its identity is immutable;
// availability is derived from overlapping reservations, not stored here.
// IDs are only unique within a company, so every lookup carries the company
// name along.
type Car struct {
	ID          int32  `json:"id"`
	CompanyName string `json:"company_name"`
	CarTypeName string `json:"car_type_name"`
}
