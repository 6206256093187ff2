package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	org := SeedOrganisation(t, pool)

	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM organisations WHERE id = $1`,
		org.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected organisation in DB, got error: %v", err)
	}

	if name != org.Name {
		t.Fatalf("expected name %q, got %q", org.Name, name)
	}
}
