package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type CustomersStore struct {
	db *sql.DB
}

const customerCols = `id, first_name, last_name, email, password, phone_number,
	address, role, is_verified, verification_code, created_at`

func scanCustomer(row interface{ Scan(...any) error }, c *domain.Customer) error {
	return row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Password,
		&c.PhoneNumber,
		&c.Address,
		&c.Role,
		&c.IsVerified,
		&c.VerificationCode,
		&c.CreatedAt,
	)
}

func (s *CustomersStore) GetAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *CustomersStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers WHERE id = $1`
	var c domain.Customer
	err := scanCustomer(s.db.QueryRowContext(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *CustomersStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerCols + ` FROM customers WHERE email = $1`
	var c domain.Customer
	err := scanCustomer(s.db.QueryRowContext(ctx, query, email), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *CustomersStore) Create(ctx context.Context, c *domain.Customer) error {
	query := `
	INSERT INTO customers (first_name, last_name, email, password, phone_number,
		address, role, is_verified, verification_code)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Password,
		c.PhoneNumber,
		c.Address,
		c.Role,
		c.IsVerified,
		c.VerificationCode,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists()
		}
		return err
	}
	return nil
}

func (s *CustomersStore) Update(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error) {
	var b setBuilder
	if patch.FirstName != nil {
		b.add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		b.add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		b.add("email", *patch.Email)
	}
	if patch.Password != nil {
		b.add("password", *patch.Password)
	}
	if patch.PhoneNumber != nil {
		b.add("phone_number", *patch.PhoneNumber)
	}
	if patch.Address != nil {
		b.add("address", *patch.Address)
	}
	if patch.Role != nil {
		b.add("role", *patch.Role)
	}
	if patch.IsVerified != nil {
		b.add("is_verified", *patch.IsVerified)
	}
	if patch.VerificationCode != nil {
		b.add("verification_code", *patch.VerificationCode)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE customers SET %s WHERE id = $%d RETURNING `+customerCols, set, idPos)

	var c domain.Customer
	err := scanCustomer(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists()
		}
		return nil, err
	}
	return &c, nil
}

// MarkVerified flips the verification flag and clears the code in one
// statement so a verified account never keeps a stale code.
func (s *CustomersStore) MarkVerified(ctx context.Context, id int64) error {
	query := `UPDATE customers SET is_verified = true, verification_code = NULL WHERE id = $1`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

func (s *CustomersStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *CustomersStore) WithBookings(ctx context.Context) ([]domain.CustomerWithBooking, error) {
	query := `
	SELECT c.id, c.first_name, c.last_name, c.email, c.phone_number, c.address,
		b.id, b.customer_id, b.car_id, b.pickup_date, b.return_date, b.total_amount
	FROM customers c
	INNER JOIN bookings b ON b.customer_id = c.id
	ORDER BY c.id, b.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CustomerWithBooking{}
	for rows.Next() {
		var cw domain.CustomerWithBooking
		err := rows.Scan(
			&cw.Customer.ID,
			&cw.Customer.FirstName,
			&cw.Customer.LastName,
			&cw.Customer.Email,
			&cw.Customer.PhoneNumber,
			&cw.Customer.Address,
			&cw.Booking.ID,
			&cw.Booking.CustomerID,
			&cw.Booking.CarID,
			&cw.Booking.PickupDate,
			&cw.Booking.ReturnDate,
			&cw.Booking.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, cw)
	}
	return out, rows.Err()
}

func (s *CustomersStore) WithReservations(ctx context.Context) ([]domain.CustomerWithReservation, error) {
	query := `
	SELECT c.id, c.first_name, c.last_name, c.email, c.phone_number, c.address,
		r.id, r.customer_id, r.car_id, r.reservation_date, r.pickup_date, r.return_date
	FROM customers c
	INNER JOIN reservations r ON r.customer_id = c.id
	ORDER BY c.id, r.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CustomerWithReservation{}
	for rows.Next() {
		var cw domain.CustomerWithReservation
		err := rows.Scan(
			&cw.Customer.ID,
			&cw.Customer.FirstName,
			&cw.Customer.LastName,
			&cw.Customer.Email,
			&cw.Customer.PhoneNumber,
			&cw.Customer.Address,
			&cw.Reservation.ID,
			&cw.Reservation.CustomerID,
			&cw.Reservation.CarID,
			&cw.Reservation.ReservationDate,
			&cw.Reservation.PickupDate,
			&cw.Reservation.ReturnDate,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, cw)
	}
	return out, rows.Err()
}
