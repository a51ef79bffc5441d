package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type PaymentsStore struct {
	db *sql.DB
}

const paymentCols = `id, booking_id, amount, payment_date, payment_method`

func scanPayment(row interface{ Scan(...any) error }, p *domain.Payment) error {
	return row.Scan(&p.ID, &p.BookingID, &p.Amount, &p.PaymentDate, &p.PaymentMethod)
}

func (s *PaymentsStore) GetAll(ctx context.Context) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+paymentCols+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *PaymentsStore) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	err := scanPayment(s.db.QueryRowContext(ctx, `SELECT `+paymentCols+` FROM payments WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PaymentsStore) Create(ctx context.Context, p *domain.Payment) error {
	query := `
	INSERT INTO payments (booking_id, amount, payment_date, payment_method)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		p.BookingID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMethod,
	).Scan(&p.ID)
}

func (s *PaymentsStore) Update(ctx context.Context, id int64, patch *domain.PaymentPatch) (*domain.Payment, error) {
	var b setBuilder
	if patch.BookingID != nil {
		b.add("booking_id", *patch.BookingID)
	}
	if patch.Amount != nil {
		b.add("amount", *patch.Amount)
	}
	if patch.PaymentDate != nil {
		b.add("payment_date", *patch.PaymentDate)
	}
	if patch.PaymentMethod != nil {
		b.add("payment_method", *patch.PaymentMethod)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE payments SET %s WHERE id = $%d RETURNING `+paymentCols, set, idPos)

	var p domain.Payment
	err := scanPayment(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *PaymentsStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

func (s *PaymentsStore) WithBooking(ctx context.Context) ([]domain.PaymentWithBooking, error) {
	query := `
	SELECT p.id, p.booking_id, p.amount, p.payment_date, p.payment_method,
		b.id, b.customer_id, b.car_id, b.pickup_date, b.return_date, b.total_amount
	FROM payments p
	INNER JOIN bookings b ON b.id = p.booking_id
	ORDER BY p.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PaymentWithBooking{}
	for rows.Next() {
		var pw domain.PaymentWithBooking
		err := rows.Scan(
			&pw.Payment.ID,
			&pw.Payment.BookingID,
			&pw.Payment.Amount,
			&pw.Payment.PaymentDate,
			&pw.Payment.PaymentMethod,
			&pw.Booking.ID,
			&pw.Booking.CustomerID,
			&pw.Booking.CarID,
			&pw.Booking.PickupDate,
			&pw.Booking.ReturnDate,
			&pw.Booking.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, rows.Err()
}
