package pawsgo

import "testing"

func TestRegisterPet(t *testing.T) {
	t.Run("should store the pet with generated id and timestamps", func(t *testing.T) {
		app := newTestApp(t)

		pet := registerTestPet(t, app, "u1", "Firulais")
		if pet.ID == "" {
			t.Fatalf("wanted: generated id\ngot: empty")
		}
		if pet.CreatedAt != "2026-01-15T10:30:00Z" || pet.UpdatedAt != pet.CreatedAt {
			t.Fatalf("wanted: frozen timestamps\ngot: %s / %s", pet.CreatedAt, pet.UpdatedAt)
		}

		stored, ok := app.Repo.GetPet(pet.ID)
		if !ok {
			t.Fatalf("wanted: pet persisted\ngot: not found")
		}
		if stored.Name != "Firulais" {
			t.Fatalf("wanted: Firulais\ngot: %s", stored.Name)
		}
	})
}

func TestUpdatePet(t *testing.T) {
	t.Run("should refresh the update timestamp", func(t *testing.T) {
		app := newTestApp(t)
		pet := registerTestPet(t, app, "u1", "Firulais")

		pet.Name = "Firulais II"
		found, err := app.UpdatePet(pet)
		if err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		if !found {
			t.Fatalf("wanted: pet found\ngot: not found")
		}

		stored, _ := app.Repo.GetPet(pet.ID)
		if stored.Name != "Firulais II" {
			t.Fatalf("wanted: Firulais II\ngot: %s", stored.Name)
		}
		if stored.UpdatedAt == "" {
			t.Fatalf("wanted: update timestamp set\ngot: empty")
		}
	})
}

func TestPetsByOwner(t *testing.T) {
	t.Run("should only return the owner's pets in order", func(t *testing.T) {
		app := newTestApp(t)
		registerTestPet(t, app, "u1", "Firulais")
		registerTestPet(t, app, "u2", "Max")
		registerTestPet(t, app, "u1", "Luna")

		pets := app.PetsByOwner("u1")
		if len(pets) != 2 {
			t.Fatalf("wanted: 2 pets\ngot: %d", len(pets))
		}
		if pets[0].Name != "Firulais" || pets[1].Name != "Luna" {
			t.Fatalf("wanted: Firulais then Luna\ngot: %s then %s", pets[0].Name, pets[1].Name)
		}
	})

	t.Run("should return nothing for an owner with no pets", func(t *testing.T) {
		app := newTestApp(t)
		if pets := app.PetsByOwner("u_empty"); len(pets) != 0 {
			t.Fatalf("wanted: no pets\ngot: %d", len(pets))
		}
	})
}
