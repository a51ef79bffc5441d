package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type CarsStore struct {
	db *sql.DB
}

const carCols = `id, car_model, year, color, rental_rate, availability, image_url, location_id`

func scanCar(row interface{ Scan(...any) error }, c *domain.Car) error {
	return row.Scan(
		&c.ID,
		&c.CarModel,
		&c.Year,
		&c.Color,
		&c.RentalRate,
		&c.Availability,
		&c.ImageURL,
		&c.LocationID,
	)
}

func (s *CarsStore) GetAll(ctx context.Context) ([]domain.Car, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+carCols+` FROM cars ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []domain.Car{}
	for rows.Next() {
		var c domain.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (s *CarsStore) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var c domain.Car
	err := scanCar(s.db.QueryRowContext(ctx, `SELECT `+carCols+` FROM cars WHERE id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *CarsStore) Create(ctx context.Context, c *domain.Car) error {
	query := `
	INSERT INTO cars (car_model, year, color, rental_rate, availability, image_url, location_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		c.CarModel,
		c.Year,
		c.Color,
		c.RentalRate,
		c.Availability,
		c.ImageURL,
		c.LocationID,
	).Scan(&c.ID)
}

func (s *CarsStore) Update(ctx context.Context, id int64, patch *domain.CarPatch) (*domain.Car, error) {
	var b setBuilder
	if patch.CarModel != nil {
		b.add("car_model", *patch.CarModel)
	}
	if patch.Year != nil {
		b.add("year", *patch.Year)
	}
	if patch.Color != nil {
		b.add("color", *patch.Color)
	}
	if patch.RentalRate != nil {
		b.add("rental_rate", *patch.RentalRate)
	}
	if patch.Availability != nil {
		b.add("availability", *patch.Availability)
	}
	if patch.ImageURL != nil {
		b.add("image_url", *patch.ImageURL)
	}
	if patch.LocationID != nil {
		b.add("location_id", *patch.LocationID)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE cars SET %s WHERE id = $%d RETURNING `+carCols, set, idPos)

	var c domain.Car
	err := scanCar(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *CarsStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *CarsStore) WithLocation(ctx context.Context) ([]domain.CarWithLocation, error) {
	query := `
	SELECT c.id, c.car_model, c.year, c.color, c.rental_rate, c.availability, c.image_url,
		l.id, l.location_name, l.address, l.contact_number
	FROM cars c
	LEFT JOIN locations l ON l.id = c.location_id
	ORDER BY c.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CarWithLocation{}
	for rows.Next() {
		var cw domain.CarWithLocation
		var locID sql.NullInt64
		var locName, locAddr, locContact sql.NullString
		err := rows.Scan(
			&cw.ID,
			&cw.CarModel,
			&cw.Year,
			&cw.Color,
			&cw.RentalRate,
			&cw.Availability,
			&cw.ImageURL,
			&locID,
			&locName,
			&locAddr,
			&locContact,
		)
		if err != nil {
			return nil, err
		}
		if locID.Valid {
			cw.Location = &domain.LocationSummary{
				ID:            locID.Int64,
				LocationName:  locName.String,
				Address:       locAddr.String,
				ContactNumber: locContact.String,
			}
		}
		out = append(out, cw)
	}
	return out, rows.Err()
}

func (s *CarsStore) BookingStats(ctx context.Context) ([]domain.CarBookingStats, error) {
	query := `
	SELECT c.id, c.car_model, c.year, c.color, c.rental_rate, c.image_url,
		l.location_name, COUNT(b.id), SUM(b.total_amount)
	FROM cars c
	LEFT JOIN locations l ON l.id = c.location_id
	LEFT JOIN bookings b ON b.car_id = c.id
	GROUP BY c.id, c.car_model, c.year, c.color, c.rental_rate, c.image_url, l.location_name
	ORDER BY c.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CarBookingStats{}
	for rows.Next() {
		var st domain.CarBookingStats
		err := rows.Scan(
			&st.ID,
			&st.CarModel,
			&st.Year,
			&st.Color,
			&st.RentalRate,
			&st.ImageURL,
			&st.LocationName,
			&st.BookingCount,
			&st.TotalRevenue,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
