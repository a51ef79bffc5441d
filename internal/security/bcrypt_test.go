package security

import (
	"testing"

	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("s3cret-pw")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pw", hash)

	assert.True(t, h.Compare(hash, "s3cret-pw"))
	assert.False(t, h.Compare(hash, "wrong-pw"))
}

func TestHashEmptyPassword(t *testing.T) {
	h := NewPasswordHasher()

	_, err := h.Hash("")
	require.Error(t, err)
	assert.True(t, domain.Is(err, "password_required"))
}

func TestCompareMalformedHash(t *testing.T) {
	h := NewPasswordHasher()
	assert.False(t, h.Compare("not-a-bcrypt-hash", "anything"))
}
