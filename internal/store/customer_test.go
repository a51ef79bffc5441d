package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCustomersStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *CustomersStore) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")
	return db, mock, &CustomersStore{db: db}
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "password", "phone_number",
		"address", "role", "is_verified", "verification_code", "created_at",
	})
}

func TestCustomersStore_Create_Success(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	code := "042137"
	c := &domain.Customer{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane@example.com",
		Password:         "$2a$10$hashedpassword",
		PhoneNumber:      "555-0101",
		Address:          "1 Main St",
		Role:             domain.RoleCustomer,
		IsVerified:       false,
		VerificationCode: &code,
	}

	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs(c.FirstName, c.LastName, c.Email, c.Password, c.PhoneNumber,
			c.Address, c.Role, c.IsVerified, c.VerificationCode).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	err := store.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, createdAt, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_Create_DuplicateEmail(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	c := &domain.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "taken@example.com",
		Password:  "$2a$10$hashedpassword",
		Role:      domain.RoleCustomer,
	}

	mock.ExpectQuery(`INSERT INTO customers`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})

	err := store.Create(context.Background(), c)

	require.Error(t, err)
	assert.True(t, domain.Is(err, "email_already_exists"), "unique violation should map to the duplicate email error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_GetByID_NotFound(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM customers WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	c, err := store.GetByID(context.Background(), 99)

	// absent rows are not an error for this store
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_GetByEmail_Success(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM customers WHERE email = \$1`).
		WithArgs("jane@example.com").
		WillReturnRows(customerRows().AddRow(
			int64(7), "Jane", "Doe", "jane@example.com", "$2a$10$hash", "555-0101",
			"1 Main St", "customer", true, nil, createdAt,
		))

	c, err := store.GetByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, domain.RoleCustomer, c.Role)
	assert.True(t, c.IsVerified)
	assert.Nil(t, c.VerificationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_Update_OnlySuppliedFields(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	first := "Janet"
	phone := "555-0202"
	patch := &domain.CustomerPatch{FirstName: &first, PhoneNumber: &phone}

	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE customers SET first_name = $1, phone_number = $2 WHERE id = $3`)).
		WithArgs(first, phone, int64(7)).
		WillReturnRows(customerRows().AddRow(
			int64(7), "Janet", "Doe", "jane@example.com", "$2a$10$hash", "555-0202",
			"1 Main St", "customer", true, nil, createdAt,
		))

	c, err := store.Update(context.Background(), 7, patch)

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Janet", c.FirstName)
	assert.Equal(t, "555-0202", c.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_Update_EmptyPatchFallsBackToGet(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM customers WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(customerRows().AddRow(
			int64(7), "Jane", "Doe", "jane@example.com", "$2a$10$hash", "555-0101",
			"1 Main St", "customer", true, nil, createdAt,
		))

	c, err := store.Update(context.Background(), 7, &domain.CustomerPatch{})

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Jane", c.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_Update_NotFound(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	first := "Janet"
	mock.ExpectQuery(`UPDATE customers SET`).
		WillReturnError(sql.ErrNoRows)

	c, err := store.Update(context.Background(), 99, &domain.CustomerPatch{FirstName: &first})

	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_MarkVerified(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET is_verified = true, verification_code = NULL WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.MarkVerified(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_Delete_ReportsRowsAffected(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := store.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = store.Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersStore_WithBookings(t *testing.T) {
	db, mock, store := setupCustomersStore(t)
	defer db.Close()

	pickup := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INNER JOIN bookings b ON b.customer_id = c.id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone_number", "address",
			"id", "customer_id", "car_id", "pickup_date", "return_date", "total_amount",
		}).AddRow(
			int64(7), "Jane", "Doe", "jane@example.com", "555-0101", "1 Main St",
			int64(3), int64(7), int64(2), pickup, ret, 450.00,
		))

	out, err := store.WithBookings(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].Customer.ID)
	assert.Equal(t, int64(3), out[0].Booking.ID)
	assert.Equal(t, 450.00, out[0].Booking.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
