// Command seed writes the demo organisations and accounts to the database.
// It is idempotent and safe to run against a populated database.
//
// Flags:
//
//	--password  plaintext password for the demo accounts (default from config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/account"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/organisation"
	"github.com/gruppe10/inflowscreen-backend/internal/app"
	"github.com/gruppe10/inflowscreen-backend/internal/bootstrap"
	"github.com/gruppe10/inflowscreen-backend/internal/config"
)

func main() {
	passwordFlag := flag.String("password", "", "plaintext password for the demo accounts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	password := *passwordFlag
	if password == "" {
		password = cfg.Seed.DemoPassword
	}

	seeder := bootstrap.NewSeeder(
		logger,
		organisation.New(pool),
		account.New(pool),
		postgres.NewTxManager(pool),
		cfg.Auth,
	)

	if err := seeder.Run(ctx, password); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}
