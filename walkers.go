package pawsgo

import (
	"slices"

	"github.com/pawsandgo/pawsgo/domain"
)

// dummyWalkers are the seed walkers shown before any real walker registers.
// They are not backed by user profiles and their stats are fixed.
var dummyWalkers = []domain.Walker{
	{
		ID:              "w_def1",
		UserID:          "u_def1",
		Name:            "Ana la Rápida",
		Bio:             "Experta en perros grandes.",
		MaxDogs:         5,
		Rating:          4.9,
		TotalRatings:    50,
		TotalWalks:      120,
		CompletedWalks:  120,
		AvailableRoutes: []string{"r_parque", "r_urbana"},
		IsAvailable:     true,
		IsDummy:         true,
	},
	{
		ID:              "w_def2",
		UserID:          "u_def2",
		Name:            "Beto el Amable",
		Bio:             "Paciencia con cachorros.",
		MaxDogs:         3,
		Rating:          4.7,
		TotalRatings:    30,
		TotalWalks:      85,
		CompletedWalks:  85,
		AvailableRoutes: []string{"r_bosque"},
		IsAvailable:     true,
		IsDummy:         true,
	},
	{
		ID:              "w_def3",
		UserID:          "u_def3",
		Name:            "Carlos Runner",
		Bio:             "Running con tu perro.",
		MaxDogs:         4,
		Rating:          4.8,
		TotalRatings:    45,
		TotalWalks:      200,
		CompletedWalks:  200,
		AvailableRoutes: []string{"r_nocturna", "r_urbana"},
		IsAvailable:     true,
		IsDummy:         true,
	},
}

// Walkers assembles the walker listing for the booking flow: the seed walkers
// (unless disabled in the config) followed by one entry per registered walker
// profile, carrying that walker's persisted rating stats and route set.
func (app *App) Walkers() []domain.Walker {
	var walkers []domain.Walker
	if app.seedWalkersEnabled() {
		walkers = slices.Clone(dummyWalkers)
	}

	for _, profile := range app.Repo.AllWalkerProfiles() {
		stats := app.Repo.GetWalkerRating(profile.ID)
		walkers = append(walkers, domain.Walker{
			ID:              profile.ID,
			UserID:          profile.ID,
			Name:            profile.Name,
			Bio:             "Paseador verificado ✅",
			MaxDogs:         3,
			Rating:          stats.AverageRating,
			TotalRatings:    stats.VoteCount,
			AvailableRoutes: app.Repo.GetRoutesForWalker(profile.ID),
			IsAvailable:     true,
		})
	}
	return walkers
}

// WalkerByID returns the walker view with the given id from the assembled
// listing.
func (app *App) WalkerByID(id string) (domain.Walker, bool) {
	for _, walker := range app.Walkers() {
		if walker.ID == id {
			return walker, true
		}
	}
	return domain.Walker{}, false
}
