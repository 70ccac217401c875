package pawsgo

import (
	"errors"
	"testing"

	"github.com/pawsandgo/pawsgo/domain"
)

func TestWalkPrice(t *testing.T) {
	t.Run("should apply the default rate", func(t *testing.T) {
		app := newTestApp(t)
		if price := app.WalkPrice(30); price != 24.0 {
			t.Fatalf("wanted: 24.0\ngot: %.2f", price)
		}
	})

	t.Run("should truncate to whole currency units", func(t *testing.T) {
		app := newTestApp(t)
		// 31 * 0.8 = 24.8, truncated
		if price := app.WalkPrice(31); price != 24.0 {
			t.Fatalf("wanted: 24.0\ngot: %.2f", price)
		}
	})

	t.Run("should use the configured rate", func(t *testing.T) {
		app := newTestApp(t)
		app.Config = &Config{PricePerMinute: 1.5}
		if price := app.WalkPrice(30); price != 45.0 {
			t.Fatalf("wanted: 45.0\ngot: %.2f", price)
		}
	})
}

func TestBookWalk(t *testing.T) {
	t.Run("should store a scheduled walk with denormalized pet fields", func(t *testing.T) {
		app := newTestApp(t)
		pet := registerTestPet(t, app, "u1", "Firulais")

		walk, err := app.BookWalk(Booking{
			OwnerID:       "u1",
			WalkerID:      "w_def1",
			PetID:         pet.ID,
			RouteID:       "r_parque",
			ScheduledDate: "2026-01-20",
			Duration:      45,
		})
		if err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		if walk.ID == "" {
			t.Fatalf("wanted: generated walk id\ngot: empty")
		}
		if walk.Status != domain.WalkScheduled {
			t.Fatalf("wanted: %s\ngot: %s", domain.WalkScheduled, walk.Status)
		}
		if walk.PetName != "Firulais" {
			t.Fatalf("wanted: Firulais\ngot: %s", walk.PetName)
		}
		if walk.TotalPrice != 36.0 {
			t.Fatalf("wanted: 36.0\ngot: %.2f", walk.TotalPrice)
		}

		stored, ok := app.Repo.GetWalk(walk.ID)
		if !ok {
			t.Fatalf("wanted: walk persisted\ngot: not found")
		}
		if stored.PetName != walk.PetName {
			t.Fatalf("wanted: %s\ngot: %s", walk.PetName, stored.PetName)
		}
	})

	t.Run("should reject an unknown pet", func(t *testing.T) {
		app := newTestApp(t)

		_, err := app.BookWalk(Booking{PetID: "p_missing", RouteID: "r_parque"})
		if !errors.Is(err, ErrUnknownPet) {
			t.Fatalf("wanted: ErrUnknownPet\ngot: %v", err)
		}
	})

	t.Run("should reject an unknown route", func(t *testing.T) {
		app := newTestApp(t)
		pet := registerTestPet(t, app, "u1", "Firulais")

		_, err := app.BookWalk(Booking{PetID: pet.ID, RouteID: "r_missing"})
		if !errors.Is(err, ErrUnknownRoute) {
			t.Fatalf("wanted: ErrUnknownRoute\ngot: %v", err)
		}
	})
}

func TestFinishAndRate(t *testing.T) {
	t.Run("should store the rating and complete the walk", func(t *testing.T) {
		app := newTestApp(t)
		pet := registerTestPet(t, app, "u1", "Firulais")
		walk, err := app.BookWalk(Booking{
			OwnerID:  "u1",
			WalkerID: "w9",
			PetID:    pet.ID,
			RouteID:  "r_urbana",
			Duration: 30,
		})
		if err != nil {
			t.Fatalf("booking walk: %s", err)
		}

		if err := app.FinishAndRate(walk.ID, "w9", 4.0, 20.0); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}

		stored, _ := app.Repo.GetWalk(walk.ID)
		if stored.Status != domain.WalkCompleted {
			t.Fatalf("wanted: %s\ngot: %s", domain.WalkCompleted, stored.Status)
		}
		if stored.Rating != 4.0 || stored.TipAmount != 20.0 {
			t.Fatalf("wanted: rating 4.0 tip 20.0\ngot: %.1f / %.1f", stored.Rating, stored.TipAmount)
		}

		stats := app.Repo.GetWalkerRating("w9")
		if stats.AverageRating != 4.5 || stats.VoteCount != 2 {
			t.Fatalf("wanted: 4.5/2\ngot: %.2f/%d", stats.AverageRating, stats.VoteCount)
		}
	})

	t.Run("should absorb an unknown walk id", func(t *testing.T) {
		app := newTestApp(t)

		if err := app.FinishAndRate("walk_missing", "w9", 4.0, 0); err != nil {
			t.Fatalf("wanted: no error\ngot: %s", err)
		}
		stats := app.Repo.GetWalkerRating("w9")
		if stats.AverageRating != 5.0 || stats.VoteCount != 0 {
			t.Fatalf("wanted: untouched default stats\ngot: %.2f/%d", stats.AverageRating, stats.VoteCount)
		}
	})
}
