package security

import (
	"testing"
	"time"

	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        42,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Role:      domain.RoleCustomer,
	}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 72*time.Hour)

	token, err := issuer.Issue(testCustomer())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := issuer.Issue(testCustomer())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.True(t, domain.Is(err, "token_expired"))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	token, err := issuer.Issue(testCustomer())
	require.NoError(t, err)

	other := NewTokenIssuer("secret-b", time.Hour)
	_, err = other.Verify(token)
	require.Error(t, err)
	assert.True(t, domain.Is(err, "token_invalid"))
}

func TestVerifyGarbageToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "token_invalid"))
}

func TestEmptySecretFailsClosed(t *testing.T) {
	issuer := NewTokenIssuer("", time.Hour)

	_, err := issuer.Issue(testCustomer())
	require.Error(t, err)
	assert.True(t, domain.Is(err, "server_config"))

	_, err = issuer.Verify("whatever")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "server_config"))
}
