package domain

// CarRentalCompany offers a set of car types and owns a fleet of cars.
// Availability and reservation state for its cars are always derived by
// querying the store, never cached in memory.
type CarRentalCompany struct {
	Name      string `json:"name"`
	CreatedOn string `json:"created_on"`
}

// CarType describes a car category offered by one company. Immutable once
// stored; the (company_name, name) pair is unique.
type CarType struct {
	CompanyName      string `json:"company_name"`
	Name             string `json:"name"`
	NbOfSeats        int32  `json:"nb_of_seats"`
	TrunkSpace       int32  `json:"trunk_space"` // litres
	SmokingAllowed   bool   `json:"smoking_allowed"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
}
