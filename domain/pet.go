package domain

// Pet sizes accepted by the booking and registration flows.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// Pet represents a dog registered by an owner. Pets are owned by exactly one
// user (OwnerID) and are replaced whole on update.
type Pet struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Name         string  `json:"name"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	Size         string  `json:"size"`                   // One of SizeSmall, SizeMedium, SizeLarge
	SpecialNeeds string  `json:"specialNeeds,omitempty"` // Free-form care instructions
	Photo        string  `json:"photo,omitempty"`        // Photo reference, may be empty
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// PetRepository is the interface that holds the pet related repository methods.
//
// Lookups never fail: a missing id is reported through the boolean result.
// Mutations on missing ids are absorbed as no-ops, matching the permissive
// contract of the persisted store. Ids are caller supplied and are not checked
// for uniqueness; duplicate inserts are possible and lookups return the first match.
type PetRepository interface {
	// AddPet appends the pet to the collection and persists it.
	AddPet(pet Pet) error

	// GetPet returns the first pet with the given id.
	GetPet(id string) (Pet, bool)

	// UpdatePet replaces the pet with a matching id. A missing id drops the
	// update silently; the collection is persisted either way.
	// It reports whether a pet was replaced.
	UpdatePet(pet Pet) (bool, error)

	// DeletePet removes every pet with the given id and persists the collection.
	// It reports whether any pet was removed.
	DeletePet(id string) (bool, error)

	// Pets returns a snapshot of the pet collection in insertion order.
	Pets() []Pet
}
