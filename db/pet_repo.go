package db

import (
	"slices"

	"github.com/pawsandgo/pawsgo/domain"
)

var _ domain.PetRepository = (*Repository)(nil)

// AddPet implements the domain.PetRepository interface.
// Ids are caller supplied and not checked for uniqueness.
func (repo *Repository) AddPet(pet domain.Pet) error {
	repo.pets = append(repo.pets, pet)
	return repo.persist(keyPets, repo.pets)
}

// GetPet implements the domain.PetRepository interface.
// It returns the first pet with the given id.
func (repo *Repository) GetPet(id string) (domain.Pet, bool) {
	for _, pet := range repo.pets {
		if pet.ID == id {
			return pet, true
		}
	}
	return domain.Pet{}, false
}

// UpdatePet implements the domain.PetRepository interface.
// An unknown id drops the update silently; the collection is persisted either way.
func (repo *Repository) UpdatePet(pet domain.Pet) (bool, error) {
	found := false
	for i := range repo.pets {
		if repo.pets[i].ID == pet.ID {
			repo.pets[i] = pet
			found = true
			break
		}
	}
	return found, repo.persist(keyPets, repo.pets)
}

// DeletePet implements the domain.PetRepository interface.
// It removes every pet with the given id.
func (repo *Repository) DeletePet(id string) (bool, error) {
	before := len(repo.pets)
	repo.pets = slices.DeleteFunc(repo.pets, func(pet domain.Pet) bool {
		return pet.ID == id
	})
	return len(repo.pets) != before, repo.persist(keyPets, repo.pets)
}

// Pets implements the domain.PetRepository interface.
func (repo *Repository) Pets() []domain.Pet {
	return slices.Clone(repo.pets)
}
