// Package requestid carries the per-request correlation id through contexts.
// It lives in its own package so services can read the id without importing
// the HTTP layer.
package requestid

import "context"

type ctxKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
