package domain

import "time"

// Customer is an account row. Password holds the bcrypt hash and is never
// serialized; VerificationCode is nil once the email has been verified.
type Customer struct {
	ID               int64     `json:"customerID"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	PhoneNumber      string    `json:"phoneNumber"`
	Address          string    `json:"address"`
	Role             Role      `json:"role"`
	IsVerified       bool      `json:"isVerified"`
	VerificationCode *string   `json:"verificationCode,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CustomerPatch carries the fields a customer update may change.
// Nil fields are left untouched.
type CustomerPatch struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Email            *string `json:"email"`
	Password         *string `json:"password"`
	PhoneNumber      *string `json:"phoneNumber"`
	Address          *string `json:"address"`
	Role             *Role   `json:"role"`
	IsVerified       *bool   `json:"isVerified"`
	VerificationCode *string `json:"verificationCode"`
}

// CustomerWithBooking is the nested projection of the customer/booking inner join.
type CustomerWithBooking struct {
	Customer Customer `json:"customer"`
	Booking  Booking  `json:"booking"`
}

// CustomerWithReservation is the nested projection of the customer/reservation inner join.
type CustomerWithReservation struct {
	Customer    Customer    `json:"customer"`
	Reservation Reservation `json:"reservation"`
}
