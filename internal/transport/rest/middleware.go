package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/transport/rest/response"
)

type claimsKey struct{}

// ClaimsFromContext retrieves the verified token claims set by Authenticate.
func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*security.Claims)
	return c, ok
}

// Authenticate validates the bearer token and injects the claims into the
// request context. Expired and malformed tokens get distinct guidance in
// the "message" field.
func Authenticate(issuer *security.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				response.DomainError(w, domain.ErrTokenMissing())
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := issuer.Verify(tokenStr)
			if err != nil {
				response.DomainError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects bearers without the admin role. Must run after
// Authenticate.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != domain.RoleAdmin {
			response.DomainError(w, domain.ErrAdminRequired())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CustomerOnly rejects bearers without the customer role.
func CustomerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != domain.RoleCustomer {
			response.DomainError(w, domain.ErrCustomerRequired())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Authenticated accepts any bearer whose role is one the system knows.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.Role.Valid() {
			response.DomainError(w, domain.ErrAccessDenied())
			return
		}
		next.ServeHTTP(w, r)
	})
}
