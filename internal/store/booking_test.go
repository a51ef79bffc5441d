package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookingsStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *BookingsStore) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")
	return db, mock, &BookingsStore{db: db}
}

func TestBookingsStore_Create(t *testing.T) {
	db, mock, store := setupBookingsStore(t)
	defer db.Close()

	b := &domain.Booking{
		CustomerID:  7,
		CarID:       2,
		PickupDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount: 450.00,
	}

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(b.CustomerID, b.CarID, b.PickupDate, b.ReturnDate, b.TotalAmount).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err := store.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, int64(3), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsStore_GetByID_NotFound(t *testing.T) {
	db, mock, store := setupBookingsStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	b, err := store.GetByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsStore_Update_OnlySuppliedFields(t *testing.T) {
	db, mock, store := setupBookingsStore(t)
	defer db.Close()

	amount := 500.00
	patch := &domain.BookingPatch{TotalAmount: &amount}

	pickup := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE bookings SET total_amount = $1 WHERE id = $2`)).
		WithArgs(amount, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "car_id", "pickup_date", "return_date", "total_amount",
		}).AddRow(int64(3), int64(7), int64(2), pickup, ret, 500.00))

	b, err := store.Update(context.Background(), 3, patch)

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 500.00, b.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsStore_WithDetails_MissingRelations(t *testing.T) {
	db, mock, store := setupBookingsStore(t)
	defer db.Close()

	pickup := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	payDate := time.Date(2025, 7, 5, 12, 0, 0, 0, time.UTC)

	cols := []string{
		"id", "customer_id", "car_id", "pickup_date", "return_date", "total_amount",
		"id", "first_name", "last_name", "email",
		"id", "car_model", "year", "rental_rate",
		"id", "booking_id", "amount", "payment_date", "payment_method",
	}

	mock.ExpectQuery(`LEFT JOIN payments p ON p.booking_id = b.id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(
				int64(3), int64(7), int64(2), pickup, ret, 450.00,
				int64(7), "Jane", "Doe", "jane@example.com",
				int64(2), "Model 3", 2024, 90.00,
				int64(11), int64(3), 450.00, payDate, "card",
			).
			AddRow(
				int64(4), int64(8), int64(9), pickup, ret, 120.00,
				nil, nil, nil, nil,
				nil, nil, nil, nil,
				nil, nil, nil, nil, nil,
			))

	out, err := store.WithDetails(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].Customer)
	assert.Equal(t, "Jane", out[0].Customer.FirstName)
	require.NotNil(t, out[0].Payment)
	assert.Equal(t, "card", out[0].Payment.PaymentMethod)

	assert.Nil(t, out[1].Customer, "deleted customer leaves a nil projection")
	assert.Nil(t, out[1].Car)
	assert.Nil(t, out[1].Payment, "unpaid booking has no payment")
	assert.NoError(t, mock.ExpectationsWereMet())
}
