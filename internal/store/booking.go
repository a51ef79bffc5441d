package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentaride/car-rental-api/internal/domain"
)

type BookingsStore struct {
	db *sql.DB
}

const bookingCols = `id, customer_id, car_id, pickup_date, return_date, total_amount`

func scanBooking(row interface{ Scan(...any) error }, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.CustomerID, &b.CarID, &b.PickupDate, &b.ReturnDate, &b.TotalAmount)
}

func (s *BookingsStore) GetAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+bookingCols+` FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *BookingsStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := scanBooking(s.db.QueryRowContext(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id = $1`, id), &b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *BookingsStore) Create(ctx context.Context, b *domain.Booking) error {
	query := `
	INSERT INTO bookings (customer_id, car_id, pickup_date, return_date, total_amount)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	return s.db.QueryRowContext(ctx, query,
		b.CustomerID,
		b.CarID,
		b.PickupDate,
		b.ReturnDate,
		b.TotalAmount,
	).Scan(&b.ID)
}

func (s *BookingsStore) Update(ctx context.Context, id int64, patch *domain.BookingPatch) (*domain.Booking, error) {
	var b setBuilder
	if patch.CustomerID != nil {
		b.add("customer_id", *patch.CustomerID)
	}
	if patch.CarID != nil {
		b.add("car_id", *patch.CarID)
	}
	if patch.PickupDate != nil {
		b.add("pickup_date", *patch.PickupDate)
	}
	if patch.ReturnDate != nil {
		b.add("return_date", *patch.ReturnDate)
	}
	if patch.TotalAmount != nil {
		b.add("total_amount", *patch.TotalAmount)
	}
	if b.empty() {
		return s.GetByID(ctx, id)
	}

	set, idPos := b.clause()
	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $%d RETURNING `+bookingCols, set, idPos)

	var bk domain.Booking
	err := scanBooking(s.db.QueryRowContext(ctx, query, append(b.args, id)...), &bk)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &bk, nil
}

func (s *BookingsStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

// WithDetails returns every booking joined with its customer, car and
// payment. Left joins keep bookings whose related rows were removed.
func (s *BookingsStore) WithDetails(ctx context.Context) ([]domain.BookingDetails, error) {
	query := `
	SELECT b.id, b.customer_id, b.car_id, b.pickup_date, b.return_date, b.total_amount,
		c.id, c.first_name, c.last_name, c.email,
		ca.id, ca.car_model, ca.year, ca.rental_rate,
		p.id, p.booking_id, p.amount, p.payment_date, p.payment_method
	FROM bookings b
	LEFT JOIN customers c ON c.id = b.customer_id
	LEFT JOIN cars ca ON ca.id = b.car_id
	LEFT JOIN payments p ON p.booking_id = b.id
	ORDER BY b.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BookingDetails{}
	for rows.Next() {
		var bd domain.BookingDetails
		var custID sql.NullInt64
		var custFirst, custLast, custEmail sql.NullString
		var carID sql.NullInt64
		var carModel sql.NullString
		var carYear sql.NullInt64
		var carRate sql.NullFloat64
		var payID, payBookingID sql.NullInt64
		var payAmount sql.NullFloat64
		var payDate sql.NullTime
		var payMethod sql.NullString

		err := rows.Scan(
			&bd.Booking.ID,
			&bd.Booking.CustomerID,
			&bd.Booking.CarID,
			&bd.Booking.PickupDate,
			&bd.Booking.ReturnDate,
			&bd.Booking.TotalAmount,
			&custID, &custFirst, &custLast, &custEmail,
			&carID, &carModel, &carYear, &carRate,
			&payID, &payBookingID, &payAmount, &payDate, &payMethod,
		)
		if err != nil {
			return nil, err
		}
		if custID.Valid {
			bd.Customer = &domain.Customer{
				ID:        custID.Int64,
				FirstName: custFirst.String,
				LastName:  custLast.String,
				Email:     custEmail.String,
			}
		}
		if carID.Valid {
			bd.Car = &domain.Car{
				ID:         carID.Int64,
				CarModel:   carModel.String,
				Year:       int(carYear.Int64),
				RentalRate: carRate.Float64,
			}
		}
		if payID.Valid {
			bd.Payment = &domain.Payment{
				ID:            payID.Int64,
				BookingID:     payBookingID.Int64,
				Amount:        payAmount.Float64,
				PaymentDate:   payDate.Time,
				PaymentMethod: payMethod.String,
			}
		}
		out = append(out, bd)
	}
	return out, rows.Err()
}
