// Package app wires configuration, storage, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/account"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/organisation"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/slide"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/slideimage"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/textbox"
	"github.com/gruppe10/inflowscreen-backend/internal/auth"
	"github.com/gruppe10/inflowscreen-backend/internal/bootstrap"
	"github.com/gruppe10/inflowscreen-backend/internal/config"
	authservice "github.com/gruppe10/inflowscreen-backend/internal/service/auth"
	slideservice "github.com/gruppe10/inflowscreen-backend/internal/service/slide"
	"github.com/gruppe10/inflowscreen-backend/internal/transport/middleware"
	"github.com/gruppe10/inflowscreen-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, optionally seeds demo data,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tm := postgres.NewTxManager(pool)

	organisations := organisation.New(pool)
	accounts := account.New(pool)
	slides := slide.New(pool)
	images := slideimage.New(pool)
	textBoxes := textbox.New(pool)

	if cfg.Seed.DemoData {
		seeder := bootstrap.NewSeeder(logger, organisations, accounts, tm, cfg.Auth)
		if err := seeder.Run(ctx, cfg.Seed.DemoPassword); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.NewService(logger, accounts, jwtManager)
	slideSvc := slideservice.NewService(logger, organisations, slides, images, textBoxes, tm, cfg.Slides)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:       logger,
		CORS:      cfg.CORS,
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Slides:    rest.NewSlideHandler(slideSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Validator: jwtManager,
		Limiter:   limiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
