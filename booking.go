package pawsgo

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

var (
	// ErrUnknownPet is returned when a booking references a pet id that is
	// not in the repository.
	ErrUnknownPet = errors.New("booking references an unknown pet")
	// ErrUnknownRoute is returned when a booking references a route id that
	// is not in the catalog.
	ErrUnknownRoute = errors.New("booking references an unknown route")
)

// Booking carries the caller-chosen parameters of a new walk.
type Booking struct {
	OwnerID       string
	WalkerID      string
	PetID         string
	RouteID       string
	ScheduledDate string
	Duration      int // Minutes
}

// WalkPrice computes the price of a walk of the given duration: the
// per-minute rate applied and truncated to whole currency units.
func (app *App) WalkPrice(durationMinutes int) float64 {
	return float64(int(float64(durationMinutes) * app.pricePerMinute()))
}

// BookWalk builds a scheduled walk from the booking, denormalizing the pet
// name and photo, and stores it. The walk id is generated.
func (app *App) BookWalk(booking Booking) (domain.Walk, error) {
	pet, ok := app.Repo.GetPet(booking.PetID)
	if !ok {
		return domain.Walk{}, ErrUnknownPet
	}
	if _, ok := RouteByID(booking.RouteID); !ok {
		return domain.Walk{}, ErrUnknownRoute
	}

	now := app.timestamp()
	walk := domain.Walk{
		ID:            uuid.NewString(),
		OwnerID:       booking.OwnerID,
		WalkerID:      booking.WalkerID,
		PetID:         booking.PetID,
		PetName:       pet.Name,
		PetPhoto:      pet.Photo,
		RouteID:       booking.RouteID,
		Status:        domain.WalkScheduled,
		ScheduledDate: booking.ScheduledDate,
		Duration:      booking.Duration,
		TotalPrice:    app.WalkPrice(booking.Duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := app.Repo.AddWalk(walk); err != nil {
		return domain.Walk{}, fmt.Errorf("booking walk : %w", err)
	}

	app.Logger.Info("walk booked",
		zap.String("walk_id", walk.ID),
		zap.String("pet_id", walk.PetID),
		zap.String("walker_id", walk.WalkerID),
		zap.Float64("total_price", walk.TotalPrice),
	)
	return walk, nil
}

// FinishAndRate stores the rating and tip on the walk, folds the rating into
// the walker's stats, and then completes the walk. The two steps are separate
// repository calls with no atomicity between them; the rating lands first.
// An unknown walk id is absorbed as a no-op, like the underlying calls.
func (app *App) FinishAndRate(walkID, walkerID string, rating, tipAmount float64) error {
	found, err := app.Repo.RateWalker(walkID, walkerID, rating, tipAmount)
	if err != nil {
		return fmt.Errorf("rating walker %s : %w", walkerID, err)
	}
	if !found {
		return nil
	}

	if _, err := app.Repo.CompleteWalk(walkID); err != nil {
		return fmt.Errorf("completing walk %s : %w", walkID, err)
	}

	app.Logger.Info("walk completed",
		zap.String("walk_id", walkID),
		zap.String("walker_id", walkerID),
		zap.Float64("rating", rating),
		zap.Float64("tip", tipAmount),
	)
	return nil
}
