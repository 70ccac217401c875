package db

import (
	"reflect"
	"testing"
)

func TestPetRepo_AddGetDelete(t *testing.T) {
	t.Run("should return a stored pet and lose it after deletion", func(t *testing.T) {
		repo := setupTestRepo(t)

		want := testPet("p1", "u1", "Rex")
		if err := repo.AddPet(want); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		got, ok := repo.GetPet("p1")
		if !ok {
			t.Fatalf("wanted pet to be found\ngot: not found")
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
		}

		removed, err := repo.DeletePet("p1")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !removed {
			t.Fatalf("wanted deletion to report true\ngot: false")
		}

		if _, ok := repo.GetPet("p1"); ok {
			t.Fatalf("wanted pet to be gone\ngot: found")
		}
	})

	t.Run("should allow duplicate ids and return the first match", func(t *testing.T) {
		repo := setupTestRepo(t)

		first := testPet("p1", "u1", "Rex")
		second := testPet("p1", "u1", "Firulais")
		if err := repo.AddPet(first); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if err := repo.AddPet(second); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		got, ok := repo.GetPet("p1")
		if !ok {
			t.Fatalf("wanted pet to be found\ngot: not found")
		}
		if got.Name != "Rex" {
			t.Fatalf("wanted: %q\ngot: %q", "Rex", got.Name)
		}

		// DeletePet removes every pet carrying the id.
		if _, err := repo.DeletePet("p1"); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if got := len(repo.Pets()); got != 0 {
			t.Fatalf("wanted: 0\ngot: %d", got)
		}
	})
}

func TestPetRepo_Update(t *testing.T) {
	t.Run("should replace the matching pet", func(t *testing.T) {
		repo := setupTestRepo(t)

		if err := repo.AddPet(testPet("p1", "u1", "Rex")); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		want := testPet("p1", "u1", "Rex")
		want.Age = 4
		want.SpecialNeeds = "Medicación diaria"

		found, err := repo.UpdatePet(want)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !found {
			t.Fatalf("wanted update to report true\ngot: false")
		}

		got, _ := repo.GetPet("p1")
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
		}
	})

	t.Run("should silently drop an update for an unknown id", func(t *testing.T) {
		repo := setupTestRepo(t)

		if err := repo.AddPet(testPet("p1", "u1", "Rex")); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		found, err := repo.UpdatePet(testPet("p2", "u1", "Ghost"))
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if found {
			t.Fatalf("wanted update to report false\ngot: true")
		}

		if got := len(repo.Pets()); got != 1 {
			t.Fatalf("wanted: 1\ngot: %d", got)
		}
	})
}

func TestPetRepo_SurvivesReload(t *testing.T) {
	store := NewMemoryStore()
	repo, err := NewRepository(store)
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}

	want := testPet("p1", "u1", "Rex")
	if err := repo.AddPet(want); err != nil {
		t.Fatalf("wanted: nil\ngot: %v", err)
	}

	reloaded, err := NewRepository(store)
	if err != nil {
		t.Fatalf("NewRepository() on populated store failed: %v", err)
	}

	got, ok := reloaded.GetPet("p1")
	if !ok {
		t.Fatalf("wanted pet to survive reload\ngot: not found")
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
	}
}

func TestPetRepo_MalformedBlob(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set("pets_data", "definitely not json"); err != nil {
		t.Fatalf("wanted: nil\ngot: %v", err)
	}

	repo, err := NewRepository(store)
	if err != nil {
		t.Fatalf("wanted malformed blob to load as empty\ngot: %v", err)
	}

	if got := len(repo.Pets()); got != 0 {
		t.Fatalf("wanted: 0\ngot: %d", got)
	}
}
