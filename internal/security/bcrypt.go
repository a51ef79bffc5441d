package security

import (
	"github.com/rentaride/car-rental-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt so the cost is fixed in one place.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", domain.ErrPasswordRequired()
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare reports whether plain matches the stored hash. Any mismatch or
// malformed hash reads the same to the caller.
func (h *PasswordHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
