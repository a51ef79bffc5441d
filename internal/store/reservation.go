package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type ReservationsStore struct {
	db *sql.DB
}

const reservationCols = `id, customer_id, car_id, reservation_date, pickup_date, return_date`

func scanReservation(row interface{ Scan(...any) error }, r *domain.Reservation) error {
	return row.Scan(&r.ID, &r.CustomerID, &r.CarID, &r.ReservationDate, &r.PickupDate, &r.ReturnDate)
}

func (s *ReservationsStore) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+reservationCols+` FROM reservations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		var r domain.Reservation
		if err := scanReservation(rows, &r); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

func (s *ReservationsStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var r domain.Reservation
	err := scanReservation(s.db.QueryRowContext(ctx, `SELECT `+reservationCols+` FROM reservations WHERE id = $1`, id), &r)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *ReservationsStore) Create(ctx context.Context, r *domain.Reservation) error {
	query := `
	INSERT INTO reservations (customer_id, car_id, reservation_date, pickup_date, return_date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		r.CustomerID,
		r.CarID,
		r.ReservationDate,
		r.PickupDate,
		r.ReturnDate,
	).Scan(&r.ID)
}

func (s *ReservationsStore) Update(ctx context.Context, id int64, patch *domain.ReservationPatch) (*domain.Reservation, error) {
	var b setBuilder
	if patch.CustomerID != nil {
		b.add("customer_id", *patch.CustomerID)
	}
	if patch.CarID != nil {
		b.add("car_id", *patch.CarID)
	}
	if patch.ReservationDate != nil {
		b.add("reservation_date", *patch.ReservationDate)
	}
	if patch.PickupDate != nil {
		b.add("pickup_date", *patch.PickupDate)
	}
	if patch.ReturnDate != nil {
		b.add("return_date", *patch.ReturnDate)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE reservations SET %s WHERE id = $%d RETURNING `+reservationCols, set, idPos)

	var r domain.Reservation
	err := scanReservation(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &r)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *ReservationsStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

func (s *ReservationsStore) WithDetails(ctx context.Context) ([]domain.ReservationDetails, error) {
	query := `
	SELECT r.id, r.customer_id, r.car_id, r.reservation_date, r.pickup_date, r.return_date,
		c.id, c.first_name, c.last_name, c.email,
		ca.id, ca.car_model, ca.year, ca.rental_rate
	FROM reservations r
	LEFT JOIN customers c ON c.id = r.customer_id
	LEFT JOIN cars ca ON ca.id = r.car_id
	ORDER BY r.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ReservationDetails{}
	for rows.Next() {
		var rd domain.ReservationDetails
		var custID sql.NullInt64
		var custFirst, custLast, custEmail sql.NullString
		var carID sql.NullInt64
		var carModel sql.NullString
		var carYear sql.NullInt64
		var carRate sql.NullFloat64

		err := rows.Scan(
			&rd.Reservation.ID,
			&rd.Reservation.CustomerID,
			&rd.Reservation.CarID,
			&rd.Reservation.ReservationDate,
			&rd.Reservation.PickupDate,
			&rd.Reservation.ReturnDate,
			&custID, &custFirst, &custLast, &custEmail,
			&carID, &carModel, &carYear, &carRate,
		)
		if err != nil {
			return nil, err
		}
		if custID.Valid {
			rd.Customer = &domain.Customer{
				ID:        custID.Int64,
				FirstName: custFirst.String,
				LastName:  custLast.String,
				Email:     custEmail.String,
			}
		}
		if carID.Valid {
			rd.Car = &domain.Car{
				ID:         carID.Int64,
				CarModel:   carModel.String,
				Year:       int(carYear.Int64),
				RentalRate: carRate.Float64,
			}
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}
