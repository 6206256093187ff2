package ctxutil

import "context"

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the authenticated caller identity (account email)
// in the context.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey, email)
}

// IdentityFromCtx extracts the caller identity from the context.
// Returns "" and false if the value is missing or empty.
func IdentityFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
