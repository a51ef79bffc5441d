package domain

import "time"

// Payment records money received against a booking.
type Payment struct {
	ID            int64     `json:"paymentID"`
	BookingID     int64     `json:"bookingID"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod string    `json:"paymentMethod"`
}

type PaymentPatch struct {
	BookingID     *int64     `json:"bookingID"`
	Amount        *float64   `json:"amount"`
	PaymentDate   *time.Time `json:"paymentDate"`
	PaymentMethod *string    `json:"paymentMethod"`
}

// PaymentWithBooking is the payment/booking inner-join projection.
type PaymentWithBooking struct {
	Payment Payment `json:"payment"`
	Booking Booking `json:"booking"`
}
