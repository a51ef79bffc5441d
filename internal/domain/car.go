package domain

// Car is a rentable vehicle. LocationID is nil for cars not assigned to a branch.
type Car struct {
	ID           int64   `json:"carID"`
	CarModel     string  `json:"carModel"`
	Year         int     `json:"year"`
	Color        string  `json:"color"`
	RentalRate   float64 `json:"rentalRate"`
	Availability bool    `json:"availability"`
	ImageURL     string  `json:"imageUrl"`
	LocationID   *int64  `json:"locationID"`
}

type CarPatch struct {
	CarModel     *string  `json:"carModel"`
	Year         *int     `json:"year"`
	Color        *string  `json:"color"`
	RentalRate   *float64 `json:"rentalRate"`
	Availability *bool    `json:"availability"`
	ImageURL     *string  `json:"imageUrl"`
	LocationID   *int64   `json:"locationID"`
}

// CarWithLocation is the car/location left-join projection; Location is nil
// when the car has no branch assignment.
type CarWithLocation struct {
	ID           int64            `json:"carID"`
	CarModel     string           `json:"carModel"`
	Year         int              `json:"year"`
	Color        string           `json:"color"`
	RentalRate   float64          `json:"rentalRate"`
	Availability bool             `json:"availability"`
	ImageURL     string           `json:"imageUrl"`
	Location     *LocationSummary `json:"location"`
}

type LocationSummary struct {
	ID            int64  `json:"locationID"`
	LocationName  string `json:"locationName"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

// CarBookingStats aggregates a car's booking history and revenue.
type CarBookingStats struct {
	ID           int64    `json:"carID"`
	CarModel     string   `json:"carModel"`
	Year         int      `json:"year"`
	Color        string   `json:"color"`
	RentalRate   float64  `json:"rentalRate"`
	ImageURL     string   `json:"imageUrl"`
	LocationName *string  `json:"locationName"`
	BookingCount int64    `json:"bookingCount"`
	TotalRevenue *float64 `json:"totalRevenue"`
}
