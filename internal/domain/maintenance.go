package domain

import "time"

// Maintenance is a service record for a car.
type Maintenance struct {
	ID              int64     `json:"maintenanceID"`
	CarID           int64     `json:"carID"`
	MaintenanceDate time.Time `json:"maintenanceDate"`
	Description     string    `json:"description"`
	Cost            float64   `json:"cost"`
}

type MaintenancePatch struct {
	CarID           *int64     `json:"carID"`
	MaintenanceDate *time.Time `json:"maintenanceDate"`
	Description     *string    `json:"description"`
	Cost            *float64   `json:"cost"`
}

// MaintenanceWithCar is the maintenance/car left-join projection.
type MaintenanceWithCar struct {
	Maintenance Maintenance `json:"maintenance"`
	Car         *Car        `json:"car"`
}
