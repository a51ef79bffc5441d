package domain

import "time"

// Reservation is a forward hold on a car before a booking is made.
type Reservation struct {
	ID              int64     `json:"reservationID"`
	CustomerID      int64     `json:"customerID"`
	CarID           int64     `json:"carID"`
	ReservationDate time.Time `json:"reservationDate"`
	PickupDate      time.Time `json:"pickupDate"`
	ReturnDate      time.Time `json:"returnDate"`
}

type ReservationPatch struct {
	CustomerID      *int64     `json:"customerID"`
	CarID           *int64     `json:"carID"`
	ReservationDate *time.Time `json:"reservationDate"`
	PickupDate      *time.Time `json:"pickupDate"`
	ReturnDate      *time.Time `json:"returnDate"`
}

// ReservationDetails joins a reservation with its customer and car.
type ReservationDetails struct {
	Reservation Reservation `json:"reservation"`
	Customer    *Customer   `json:"customer"`
	Car         *Car        `json:"car"`
}
