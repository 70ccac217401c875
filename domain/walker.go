package domain

// Walker is the view of a service provider shown in the booking flow. It is
// assembled from a user profile, the walker's persisted stats and route set,
// or from the seed catalog for demo entries; it is never persisted itself.
type Walker struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Name            string   `json:"name"`
	IsDummy         bool     `json:"isDummy"` // Seed entry, not backed by a registered user
	Bio             string   `json:"bio"`
	MaxDogs         int      `json:"maxDogs"`
	Rating          float64  `json:"rating"`
	TotalRatings    int      `json:"totalRatings"`
	TotalWalks      int      `json:"totalWalks"`
	CompletedWalks  int      `json:"completedWalks"`
	ActiveWalks     int      `json:"activeWalks"`
	TotalTips       float64  `json:"totalTips"`
	AvailableRoutes []string `json:"availableRoutes"`
	IsAvailable     bool     `json:"isAvailable"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// WalkerStats is the persisted rating aggregate for a single walker.
// AverageRating stays in [0,5] for inputs in that range and VoteCount only
// ever grows.
type WalkerStats struct {
	AverageRating float64 `json:"averageRating"`
	VoteCount     int     `json:"voteCount"`
}

// WalkerRepository is the interface that holds the walker rating and route
// repository methods.
type WalkerRepository interface {
	// RateWalker stores the rating and tip on the matching walk (without
	// touching its status, completion is a separate call) and folds the rating
	// into the walker's running average. Walkers with no prior stats are
	// seeded at an average of 5.0 with one vote before the new rating is
	// applied. It reports whether the walk was found; an absent walk leaves
	// the stats untouched.
	RateWalker(walkID, walkerID string, rating, tipAmount float64) (bool, error)

	// GetWalkerRating returns the walker's stats, or a default of 5.0 with
	// zero votes when none are stored. It never fails.
	GetWalkerRating(walkerID string) WalkerStats

	// ToggleRouteForWalker flips the membership of routeID in the walker's
	// route set. Toggling twice restores the original set.
	ToggleRouteForWalker(walkerID, routeID string) error

	// GetRoutesForWalker returns the walker's opted-in route ids, or the
	// default set for walkers that never toggled a route.
	GetRoutesForWalker(walkerID string) []string
}
