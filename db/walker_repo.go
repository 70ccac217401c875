package db

import (
	"slices"

	"github.com/pawsandgo/pawsgo/domain"
)

var _ domain.WalkerRepository = (*Repository)(nil)

// defaultWalkerRoutes is the route set assumed for walkers that never toggled
// a route.
var defaultWalkerRoutes = []string{"r_parque", "r_urbana"}

// RateWalker implements the domain.WalkerRepository interface.
// It stores the rating and tip on the walk (status untouched, completion is a
// separate call) and folds the rating into the walker's running average.
func (repo *Repository) RateWalker(walkID, walkerID string, rating, tipAmount float64) (bool, error) {
	for i := range repo.walks {
		if repo.walks[i].ID == walkID {
			repo.walks[i].Rating = rating
			repo.walks[i].TipAmount = tipAmount
			if err := repo.persist(keyWalks, repo.walks); err != nil {
				return true, err
			}
			return true, repo.updateWalkerStats(walkerID, rating)
		}
	}
	return false, nil
}

// updateWalkerStats folds one more rating into the running average:
// newAverage = (oldAverage*oldCount + rating) / (oldCount+1). A walker with no
// prior stats is seeded at (5.0, 1), so the seed counts as one 5.0 vote.
func (repo *Repository) updateWalkerStats(walkerID string, rating float64) error {
	stats, ok := repo.walkerStats[walkerID]
	if !ok {
		stats = domain.WalkerStats{AverageRating: 5.0, VoteCount: 1}
	}

	total := stats.AverageRating * float64(stats.VoteCount)
	stats.VoteCount++
	stats.AverageRating = (total + rating) / float64(stats.VoteCount)

	repo.walkerStats[walkerID] = stats
	return repo.persist(keyWalkerStats, repo.walkerStats)
}

// GetWalkerRating implements the domain.WalkerRepository interface.
// It never fails; walkers without stats get the display default of 5.0 with
// zero votes.
func (repo *Repository) GetWalkerRating(walkerID string) domain.WalkerStats {
	if stats, ok := repo.walkerStats[walkerID]; ok {
		return stats
	}
	return domain.WalkerStats{AverageRating: 5.0, VoteCount: 0}
}

// ToggleRouteForWalker implements the domain.WalkerRepository interface.
// Toggling the same route twice restores the original set.
func (repo *Repository) ToggleRouteForWalker(walkerID, routeID string) error {
	routes := repo.GetRoutesForWalker(walkerID)
	if slices.Contains(routes, routeID) {
		routes = slices.DeleteFunc(routes, func(id string) bool {
			return id == routeID
		})
	} else {
		routes = append(routes, routeID)
	}

	repo.walkerRoutes[walkerID] = routes
	return repo.persist(keyWalkerRoutes, repo.walkerRoutes)
}

// GetRoutesForWalker implements the domain.WalkerRepository interface.
func (repo *Repository) GetRoutesForWalker(walkerID string) []string {
	if routes, ok := repo.walkerRoutes[walkerID]; ok {
		return slices.Clone(routes)
	}
	return slices.Clone(defaultWalkerRoutes)
}
