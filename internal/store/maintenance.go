package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type MaintenancesStore struct {
	db *sql.DB
}

const maintenanceCols = `id, car_id, maintenance_date, description, cost`

func scanMaintenance(row interface{ Scan(...any) error }, m *domain.Maintenance) error {
	return row.Scan(&m.ID, &m.CarID, &m.MaintenanceDate, &m.Description, &m.Cost)
}

func (s *MaintenancesStore) GetAll(ctx context.Context) ([]domain.Maintenance, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+maintenanceCols+` FROM maintenance ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Maintenance{}
	for rows.Next() {
		var m domain.Maintenance
		if err := scanMaintenance(rows, &m); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (s *MaintenancesStore) GetByID(ctx context.Context, id int64) (*domain.Maintenance, error) {
	var m domain.Maintenance
	err := scanMaintenance(s.db.QueryRowContext(ctx, `SELECT `+maintenanceCols+` FROM maintenance WHERE id = $1`, id), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *MaintenancesStore) Create(ctx context.Context, m *domain.Maintenance) error {
	query := `
	INSERT INTO maintenance (car_id, maintenance_date, description, cost)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		m.CarID,
		m.MaintenanceDate,
		m.Description,
		m.Cost,
	).Scan(&m.ID)
}

func (s *MaintenancesStore) Update(ctx context.Context, id int64, patch *domain.MaintenancePatch) (*domain.Maintenance, error) {
	var b setBuilder
	if patch.CarID != nil {
		b.add("car_id", *patch.CarID)
	}
	if patch.MaintenanceDate != nil {
		b.add("maintenance_date", *patch.MaintenanceDate)
	}
	if patch.Description != nil {
		b.add("description", *patch.Description)
	}
	if patch.Cost != nil {
		b.add("cost", *patch.Cost)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE maintenance SET %s WHERE id = $%d RETURNING `+maintenanceCols, set, idPos)

	var m domain.Maintenance
	err := scanMaintenance(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *MaintenancesStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM maintenance WHERE id = $1`, id)
	return err
}

func (s *MaintenancesStore) WithCar(ctx context.Context) ([]domain.MaintenanceWithCar, error) {
	query := `
	SELECT m.id, m.car_id, m.maintenance_date, m.description, m.cost,
		c.id, c.car_model, c.year, c.color
	FROM maintenance m
	LEFT JOIN cars c ON c.id = m.car_id
	ORDER BY m.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaintenanceWithCar{}
	for rows.Next() {
		var mw domain.MaintenanceWithCar
		var carID sql.NullInt64
		var carModel, carColor sql.NullString
		var carYear sql.NullInt64

		err := rows.Scan(
			&mw.Maintenance.ID,
			&mw.Maintenance.CarID,
			&mw.Maintenance.MaintenanceDate,
			&mw.Maintenance.Description,
			&mw.Maintenance.Cost,
			&carID, &carModel, &carYear, &carColor,
		)
		if err != nil {
			return nil, err
		}
		if carID.Valid {
			mw.Car = &domain.Car{
				ID:       carID.Int64,
				CarModel: carModel.String,
				Year:     int(carYear.Int64),
				Color:    carColor.String,
			}
		}
		out = append(out, mw)
	}
	return out, rows.Err()
}
