package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gruppe10/inflowscreen-backend/internal/config"
	"github.com/gruppe10/inflowscreen-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Log       *slog.Logger
	CORS      config.CORSConfig
	Auth      *AuthHandler
	Slides    *SlideHandler
	Health    *HealthHandler
	Validator middleware.TokenValidator
	Limiter   *middleware.RateLimiter
}

// loginRateLimit is the per-IP request budget for the login endpoint.
const loginRateLimit = 10

// NewRouter builds the HTTP routing table with the middleware chain applied.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	if deps.Limiter == nil {
		deps.Limiter = middleware.NewRateLimiter(time.Minute)
	}
	mux.Handle("POST /auth/login",
		deps.Limiter.Limit(loginRateLimit)(http.HandlerFunc(deps.Auth.Login)))

	mux.HandleFunc("POST /slides", deps.Slides.Create)
	mux.HandleFunc("GET /slides", deps.Slides.List)
	mux.HandleFunc("GET /slides/{id}", deps.Slides.Get)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	)

	return chain(mux)
}
