package store

import (
	"context"
	"database/sql"

	"github.com/rentaride/car-rental-api/internal/domain"
)

// Storage bundles the per-entity stores behind interfaces so services and
// handlers can be tested against fakes.
type Storage struct {
	Customers interface {
		GetAll(ctx context.Context) ([]domain.Customer, error)
		GetByID(ctx context.Context, id int64) (*domain.Customer, error)
		GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
		Create(ctx context.Context, c *domain.Customer) error
		Update(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error)
		MarkVerified(ctx context.Context, id int64) error
		Delete(ctx context.Context, id int64) (bool, error)
		WithBookings(ctx context.Context) ([]domain.CustomerWithBooking, error)
		WithReservations(ctx context.Context) ([]domain.CustomerWithReservation, error)
	}

	Cars interface {
		GetAll(ctx context.Context) ([]domain.Car, error)
		GetByID(ctx context.Context, id int64) (*domain.Car, error)
		Create(ctx context.Context, c *domain.Car) error
		Update(ctx context.Context, id int64, patch *domain.CarPatch) (*domain.Car, error)
		Delete(ctx context.Context, id int64) (bool, error)
		WithLocation(ctx context.Context) ([]domain.CarWithLocation, error)
		BookingStats(ctx context.Context) ([]domain.CarBookingStats, error)
	}

	Locations interface {
		GetAll(ctx context.Context) ([]domain.Location, error)
		GetByID(ctx context.Context, id int64) (*domain.Location, error)
		Create(ctx context.Context, l *domain.Location) error
		Update(ctx context.Context, id int64, patch *domain.LocationPatch) (*domain.Location, error)
		Delete(ctx context.Context, id int64) error
		WithCars(ctx context.Context) ([]domain.LocationWithCar, error)
		WithAssignedCars(ctx context.Context) ([]domain.LocationAssignedCar, error)
	}

	Bookings interface {
		GetAll(ctx context.Context) ([]domain.Booking, error)
		GetByID(ctx context.Context, id int64) (*domain.Booking, error)
		Create(ctx context.Context, b *domain.Booking) error
		Update(ctx context.Context, id int64, patch *domain.BookingPatch) (*domain.Booking, error)
		Delete(ctx context.Context, id int64) error
		WithDetails(ctx context.Context) ([]domain.BookingDetails, error)
	}

	Reservations interface {
		GetAll(ctx context.Context) ([]domain.Reservation, error)
		GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
		Create(ctx context.Context, r *domain.Reservation) error
		Update(ctx context.Context, id int64, patch *domain.ReservationPatch) (*domain.Reservation, error)
		Delete(ctx context.Context, id int64) error
		WithDetails(ctx context.Context) ([]domain.ReservationDetails, error)
	}

	Payments interface {
		GetAll(ctx context.Context) ([]domain.Payment, error)
		GetByID(ctx context.Context, id int64) (*domain.Payment, error)
		Create(ctx context.Context, p *domain.Payment) error
		Update(ctx context.Context, id int64, patch *domain.PaymentPatch) (*domain.Payment, error)
		Delete(ctx context.Context, id int64) error
		WithBooking(ctx context.Context) ([]domain.PaymentWithBooking, error)
	}

	Insurances interface {
		GetAll(ctx context.Context) ([]domain.Insurance, error)
		GetByID(ctx context.Context, id int64) (*domain.Insurance, error)
		Create(ctx context.Context, i *domain.Insurance) error
		Update(ctx context.Context, id int64, patch *domain.InsurancePatch) (*domain.Insurance, error)
		Delete(ctx context.Context, id int64) error
		WithCar(ctx context.Context) ([]domain.InsuranceWithCar, error)
	}

	Maintenances interface {
		GetAll(ctx context.Context) ([]domain.Maintenance, error)
		GetByID(ctx context.Context, id int64) (*domain.Maintenance, error)
		Create(ctx context.Context, m *domain.Maintenance) error
		Update(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.Maintenance, error)
		Delete(ctx context.Context, id int64) error
		WithCar(ctx context.Context) ([]domain.MaintenanceWithCar, error)
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Customers:    &CustomersStore{db: db},
		Cars:         &CarsStore{db: db},
		Locations:    &LocationsStore{db: db},
		Bookings:     &BookingsStore{db: db},
		Reservations: &ReservationsStore{db: db},
		Payments:     &PaymentsStore{db: db},
		Insurances:   &InsurancesStore{db: db},
		Maintenances: &MaintenancesStore{db: db},
	}
}
