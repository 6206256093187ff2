package middleware

import (
	"net/http"
	"strings"

	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

// TokenValidator checks an access token and returns the account identity.
type TokenValidator interface {
	ValidateAccessToken(token string) (email string, role string, err error)
}

// Auth validates the bearer token and puts the account identity into the
// request context. Requests without a token pass through anonymously;
// handlers decide whether an identity is required.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			email, _, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
