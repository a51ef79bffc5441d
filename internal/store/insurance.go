package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type InsurancesStore struct {
	db *sql.DB
}

const insuranceCols = `id, car_id, provider_name, policy_number, coverage_amount, expiration_date`

func scanInsurance(row interface{ Scan(...any) error }, i *domain.Insurance) error {
	return row.Scan(&i.ID, &i.CarID, &i.ProviderName, &i.PolicyNumber, &i.CoverageAmount, &i.ExpirationDate)
}

func (s *InsurancesStore) GetAll(ctx context.Context) ([]domain.Insurance, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+insuranceCols+` FROM insurance ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []domain.Insurance{}
	for rows.Next() {
		var i domain.Insurance
		if err := scanInsurance(rows, &i); err != nil {
			return nil, err
		}
		policies = append(policies, i)
	}
	return policies, rows.Err()
}

func (s *InsurancesStore) GetByID(ctx context.Context, id int64) (*domain.Insurance, error) {
	var i domain.Insurance
	err := scanInsurance(s.db.QueryRowContext(ctx, `SELECT `+insuranceCols+` FROM insurance WHERE id = $1`, id), &i)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (s *InsurancesStore) Create(ctx context.Context, i *domain.Insurance) error {
	query := `
	INSERT INTO insurance (car_id, provider_name, policy_number, coverage_amount, expiration_date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		i.CarID,
		i.ProviderName,
		i.PolicyNumber,
		i.CoverageAmount,
		i.ExpirationDate,
	).Scan(&i.ID)
}

func (s *InsurancesStore) Update(ctx context.Context, id int64, patch *domain.InsurancePatch) (*domain.Insurance, error) {
	var b setBuilder
	if patch.CarID != nil {
		b.add("car_id", *patch.CarID)
	}
	if patch.ProviderName != nil {
		b.add("provider_name", *patch.ProviderName)
	}
	if patch.PolicyNumber != nil {
		b.add("policy_number", *patch.PolicyNumber)
	}
	if patch.CoverageAmount != nil {
		b.add("coverage_amount", *patch.CoverageAmount)
	}
	if patch.ExpirationDate != nil {
		b.add("expiration_date", *patch.ExpirationDate)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE insurance SET %s WHERE id = $%d RETURNING `+insuranceCols, set, idPos)

	var i domain.Insurance
	err := scanInsurance(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &i)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (s *InsurancesStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM insurance WHERE id = $1`, id)
	return err
}

func (s *InsurancesStore) WithCar(ctx context.Context) ([]domain.InsuranceWithCar, error) {
	query := `
	SELECT i.id, i.car_id, i.provider_name, i.policy_number, i.coverage_amount, i.expiration_date,
		c.id, c.car_model, c.year, c.color
	FROM insurance i
	LEFT JOIN cars c ON c.id = i.car_id
	ORDER BY i.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.InsuranceWithCar{}
	for rows.Next() {
		var iw domain.InsuranceWithCar
		var carID sql.NullInt64
		var carModel, carColor sql.NullString
		var carYear sql.NullInt64

		err := rows.Scan(
			&iw.Insurance.ID,
			&iw.Insurance.CarID,
			&iw.Insurance.ProviderName,
			&iw.Insurance.PolicyNumber,
			&iw.Insurance.CoverageAmount,
			&iw.Insurance.ExpirationDate,
			&carID, &carModel, &carYear, &carColor,
		)
		if err != nil {
			return nil, err
		}
		if carID.Valid {
			iw.Car = &domain.Car{
				ID:       carID.Int64,
				CarModel: carModel.String,
				Year:     int(carYear.Int64),
				Color:    carColor.String,
			}
		}
		out = append(out, iw)
	}
	return out, rows.Err()
}
