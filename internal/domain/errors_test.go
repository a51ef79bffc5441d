package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ErrStorage(cause)

	assert.Equal(t, KindInfrastructure, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestError_ErrorString(t *testing.T) {
	err := ErrInvalidCredentials()
	assert.Contains(t, err.Error(), "invalid_credentials")

	wrapped := ErrStorage(fmt.Errorf("conn refused"))
	assert.Contains(t, wrapped.Error(), "conn refused")
}

func TestIs_MatchesCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrEmailAlreadyExists())

	assert.True(t, Is(err, "email_already_exists"))
	assert.False(t, Is(err, "customer_not_found"))
	assert.False(t, Is(errors.New("plain"), "email_already_exists"))
}

func TestTokenErrors_CarryHints(t *testing.T) {
	require.Equal(t, "Please login to access this resource", ErrTokenMissing().Hint)
	require.Equal(t, "Session expired, please login again", ErrTokenExpired().Hint)
	require.Equal(t, "Invalid token, please login again", ErrTokenInvalid().Hint)

	// Expired and malformed tokens produce the same outer error text but
	// different hints.
	assert.Equal(t, ErrTokenExpired().Message, ErrTokenInvalid().Message)
	assert.NotEqual(t, ErrTokenExpired().Hint, ErrTokenInvalid().Hint)
}

func TestLoginFailures_Indistinguishable(t *testing.T) {
	// Unknown email and wrong password must be the same outward error.
	assert.Equal(t, ErrInvalidCredentials().Message, ErrInvalidCredentials().Message)
	assert.Equal(t, KindAuth, ErrInvalidCredentials().Kind)
}
