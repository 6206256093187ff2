package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an id, honoring a client-supplied
// X-Request-Id header and echoing the id back in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
