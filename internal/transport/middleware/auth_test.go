package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gruppe10/inflowscreen-backend/pkg/ctxutil"
)

// mockValidator implements tokenValidator for tests.
type mockValidator struct {
	email string
	role  string
	err   error
}

func (m *mockValidator) ValidateAccessToken(token string) (string, string, error) {
	return m.email, m.role, m.err
}

func TestAuth_ValidToken(t *testing.T) {
	validator := &mockValidator{email: "fystest@hotmail.com", role: "USER"}

	var gotIdentity string
	var gotOK bool
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, gotOK = ctxutil.IdentityFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/slides", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOK || gotIdentity != "fystest@hotmail.com" {
		t.Fatalf("expected identity in context, got %q (ok=%v)", gotIdentity, gotOK)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &mockValidator{err: errors.New("bad signature")}

	called := false
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/slides", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatal("handler must not be called for invalid token")
	}
}

func TestAuth_NoToken_Anonymous(t *testing.T) {
	validator := &mockValidator{err: errors.New("should not be called")}

	var gotOK bool
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = ctxutil.IdentityFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOK {
		t.Fatal("expected no identity for anonymous request")
	}
}
