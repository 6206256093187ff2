package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/slide"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/slideimage"
	"github.com/gruppe10/inflowscreen-backend/internal/adapter/postgres/testhelper"
	"github.com/gruppe10/inflowscreen-backend/internal/domain"
)

// slideExists checks whether a slide row with the given ID exists in the database.
func slideExists(t *testing.T, pool *pgxpool.Pool, slideID int64) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM slides WHERE id = $1)`,
		slideID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("slideExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	org := testhelper.SeedOrganisation(t, pool)
	slides := slide.New(pool)

	var created *domain.Slide
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		var txErr error
		created, txErr = slides.Create(ctx, &domain.Slide{OrganisationID: org.ID, Title: "Committed"})
		return txErr
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !slideExists(t, pool, created.ID) {
		t.Fatal("expected slide to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	org := testhelper.SeedOrganisation(t, pool)
	slides := slide.New(pool)

	sentinel := errors.New("business logic error")

	var created *domain.Slide
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		var txErr error
		created, txErr = slides.Create(ctx, &domain.Slide{OrganisationID: org.ID, Title: "Rolled back"})
		if txErr != nil {
			t.Fatalf("create inside tx failed: %v", txErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if slideExists(t, pool, created.ID) {
		t.Fatal("expected slide NOT to exist after rolled-back transaction")
	}
}

// A failing overlay insert inside the transaction must take the parent slide
// down with it: no orphan slides without their overlays.
func TestRunInTx_OverlayFailureRollsBackSlide(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	org := testhelper.SeedOrganisation(t, pool)
	slides := slide.New(pool)
	images := slideimage.New(pool)

	var created *domain.Slide
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		var txErr error
		created, txErr = slides.Create(ctx, &domain.Slide{OrganisationID: org.ID, Title: "Half done"})
		if txErr != nil {
			return txErr
		}

		// Point the batch at a slide that does not exist to force an FK error.
		_, txErr = images.CreateBatch(ctx, 999999999, []domain.SlideImage{
			{URL: "/images/broken.png", Width: 10, Height: 10},
		})
		return txErr
	})

	if err == nil {
		t.Fatal("expected transaction to fail")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected error wrapping ErrNotFound, got: %v", err)
	}

	if slideExists(t, pool, created.ID) {
		t.Fatal("expected slide NOT to exist after failed overlay insert")
	}
}
