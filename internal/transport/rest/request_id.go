package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rentaride/car-rental-api/internal/logger"
	"github.com/rentaride/car-rental-api/internal/transport/rest/requestid"
)

const requestIDHeader = "X-Request-Id"

// RequestID injects a request id into context and response header, and
// installs a request-scoped logger carrying it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, rid)

		ctx := requestid.WithContext(r.Context(), rid)
		lg := logger.Logger.With().Str("request_id", rid).Logger()
		ctx = logger.WithContext(ctx, lg)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
