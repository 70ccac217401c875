package db

import (
	"os"
	"testing"

	"github.com/pawsandgo/pawsgo/domain"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(NewMemoryStore())
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}
	return repo
}

func setupSQLiteStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	dbConn, err := New(tempFile.Name())
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}

	store := NewStore(dbConn)

	teardown := func() {
		store.Close()
		os.Remove(tempFile.Name())
	}

	return store, teardown
}

func testPet(id, ownerID, name string) domain.Pet {
	return domain.Pet{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Breed:     "Criollo",
		Age:       3,
		Weight:    12.5,
		Size:      domain.SizeMedium,
		CreatedAt: "2026-01-10T09:00:00Z",
		UpdatedAt: "2026-01-10T09:00:00Z",
	}
}

func testWalk(id, walkerID string) domain.Walk {
	return domain.Walk{
		ID:            id,
		OwnerID:       "u1",
		WalkerID:      walkerID,
		PetID:         "p1",
		PetName:       "Rex",
		RouteID:       "r_parque",
		Status:        domain.WalkScheduled,
		ScheduledDate: "2026-01-12",
		Duration:      60,
		TotalPrice:    48,
		CreatedAt:     "2026-01-10T09:00:00Z",
		UpdatedAt:     "2026-01-10T09:00:00Z",
	}
}
