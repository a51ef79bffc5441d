package domain

import "time"

// Booking records a rental of a car by a customer.
type Booking struct {
	ID          int64     `json:"bookingID"`
	CustomerID  int64     `json:"customerID"`
	CarID       int64     `json:"carID"`
	PickupDate  time.Time `json:"pickupDate"`
	ReturnDate  time.Time `json:"returnDate"`
	TotalAmount float64   `json:"totalAmount"`
}

type BookingPatch struct {
	CustomerID  *int64     `json:"customerID"`
	CarID       *int64     `json:"carID"`
	PickupDate  *time.Time `json:"pickupDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	TotalAmount *float64   `json:"totalAmount"`
}

// BookingDetails joins a booking with its customer, car and payment.
// Related entities are nil when the left join finds no match.
type BookingDetails struct {
	Booking  Booking   `json:"booking"`
	Customer *Customer `json:"customer"`
	Car      *Car      `json:"car"`
	Payment  *Payment  `json:"payment"`
}
