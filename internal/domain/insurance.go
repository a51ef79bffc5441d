package domain

import "time"

// Insurance is a policy covering a car.
type Insurance struct {
	ID             int64     `json:"insuranceID"`
	CarID          int64     `json:"carID"`
	ProviderName   string    `json:"providerName"`
	PolicyNumber   string    `json:"policyNumber"`
	CoverageAmount float64   `json:"coverageAmount"`
	ExpirationDate time.Time `json:"expirationDate"`
}

type InsurancePatch struct {
	CarID          *int64     `json:"carID"`
	ProviderName   *string    `json:"providerName"`
	PolicyNumber   *string    `json:"policyNumber"`
	CoverageAmount *float64   `json:"coverageAmount"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

// InsuranceWithCar is the insurance/car left-join projection.
type InsuranceWithCar struct {
	Insurance Insurance `json:"insurance"`
	Car       *Car      `json:"car"`
}
