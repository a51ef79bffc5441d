package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type LocationsStore struct {
	db *sql.DB
}

const locationCols = `id, location_name, address, contact_number`

func scanLocation(row interface{ Scan(...any) error }, l *domain.Location) error {
	return row.Scan(&l.ID, &l.LocationName, &l.Address, &l.ContactNumber)
}

func (s *LocationsStore) GetAll(ctx context.Context) ([]domain.Location, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+locationCols+` FROM locations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []domain.Location{}
	for rows.Next() {
		var l domain.Location
		if err := scanLocation(rows, &l); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (s *LocationsStore) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	err := scanLocation(s.db.QueryRowContext(ctx, `SELECT `+locationCols+` FROM locations WHERE id = $1`, id), &l)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *LocationsStore) Create(ctx context.Context, l *domain.Location) error {
	query := `
	INSERT INTO locations (location_name, address, contact_number)
	VALUES ($1, $2, $3)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query, l.LocationName, l.Address, l.ContactNumber).Scan(&l.ID)
}

func (s *LocationsStore) Update(ctx context.Context, id int64, patch *domain.LocationPatch) (*domain.Location, error) {
	var b setBuilder
	if patch.LocationName != nil {
		b.add("location_name", *patch.LocationName)
	}
	if patch.Address != nil {
		b.add("address", *patch.Address)
	}
	if patch.ContactNumber != nil {
		b.add("contact_number", *patch.ContactNumber)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE locations SET %s WHERE id = $%d RETURNING `+locationCols, set, idPos)

	var l domain.Location
	err := scanLocation(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &l)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *LocationsStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	return err
}

func (s *LocationsStore) WithCars(ctx context.Context) ([]domain.LocationWithCar, error) {
	query := `
	SELECT l.id, l.location_name, l.address, c.id, c.car_model
	FROM locations l
	LEFT JOIN cars c ON c.location_id = l.id
	ORDER BY l.id, c.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.LocationWithCar{}
	for rows.Next() {
		var lw domain.LocationWithCar
		if err := rows.Scan(&lw.ID, &lw.LocationName, &lw.Address, &lw.CarID, &lw.CarModel); err != nil {
			return nil, err
		}
		out = append(out, lw)
	}
	return out, rows.Err()
}

func (s *LocationsStore) WithAssignedCars(ctx context.Context) ([]domain.LocationAssignedCar, error) {
	query := `
	SELECT l.id, l.location_name, c.car_model, c.year
	FROM locations l
	INNER JOIN cars c ON c.location_id = l.id
	ORDER BY l.id, c.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.LocationAssignedCar{}
	for rows.Next() {
		var la domain.LocationAssignedCar
		if err := rows.Scan(&la.ID, &la.LocationName, &la.CarModel, &la.Year); err != nil {
			return nil, err
		}
		out = append(out, la)
	}
	return out, rows.Err()
}
