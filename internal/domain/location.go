package domain

// Location is a rental branch.
type Location struct {
	ID            int64  `json:"locationID"`
	LocationName  string `json:"locationName"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

type LocationPatch struct {
	LocationName  *string `json:"locationName"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
}

// LocationWithCar is the location/car left-join projection; car fields are nil
// for branches with no cars.
type LocationWithCar struct {
	ID           int64   `json:"locationID"`
	LocationName string  `json:"locationName"`
	Address      string  `json:"address"`
	CarID        *int64  `json:"carID"`
	CarModel     *string `json:"carModel"`
}

// LocationAssignedCar is the inner-join projection of branches with at least one car.
type LocationAssignedCar struct {
	ID           int64  `json:"locationID"`
	LocationName string `json:"locationName"`
	CarModel     string `json:"carModel"`
	Year         int    `json:"year"`
}
