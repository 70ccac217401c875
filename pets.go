package pawsgo

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

// NewPet carries the caller-chosen fields of a pet registration.
type NewPet struct {
	OwnerID      string
	Name         string
	Breed        string
	Age          int
	Weight       float64
	Size         string
	SpecialNeeds string
	Photo        string
}

// RegisterPet stores a new pet with a generated id and timestamps.
func (app *App) RegisterPet(newPet NewPet) (domain.Pet, error) {
	now := app.timestamp()
	pet := domain.Pet{
		ID:           uuid.NewString(),
		OwnerID:      newPet.OwnerID,
		Name:         newPet.Name,
		Breed:        newPet.Breed,
		Age:          newPet.Age,
		Weight:       newPet.Weight,
		Size:         newPet.Size,
		SpecialNeeds: newPet.SpecialNeeds,
		Photo:        newPet.Photo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := app.Repo.AddPet(pet); err != nil {
		return domain.Pet{}, fmt.Errorf("registering pet : %w", err)
	}

	app.Logger.Info("pet registered",
		zap.String("pet_id", pet.ID),
		zap.String("owner_id", pet.OwnerID),
	)
	return pet, nil
}

// UpdatePet replaces the stored pet, refreshing its update timestamp.
// It reports whether the pet was found.
func (app *App) UpdatePet(pet domain.Pet) (bool, error) {
	pet.UpdatedAt = app.timestamp()
	return app.Repo.UpdatePet(pet)
}

// PetsByOwner returns the owner's pets in registration order.
func (app *App) PetsByOwner(ownerID string) []domain.Pet {
	var pets []domain.Pet
	for _, pet := range app.Repo.Pets() {
		if pet.OwnerID == ownerID {
			pets = append(pets, pet)
		}
	}
	return pets
}
