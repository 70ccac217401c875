package db

import (
	"encoding/json"
	"fmt"

	"github.com/pawsandgo/pawsgo/domain"
)

// Storage keys, one per persisted collection plus the session scalars.
// The layout is flat on purpose: every value is either a JSON blob of a whole
// collection or a plain string.
const (
	keyPets         = "pets_data"
	keyWalks        = "walks_data"
	keyWalkerStats  = "walkers_stats"
	keyUserProfile  = "user_profile_data"
	keyAllUsers     = "all_users_db"
	keyWalkerRoutes = "walker_routes_map"
	keyUserID       = "curr_user_id"
	keyUserRole     = "curr_user_role"
)

// Repository is the single authoritative store for all domain collections.
// It keeps every collection in memory and writes the whole collection back to
// the blob store on each mutation, so a loaded Repository and its backing
// store never disagree for longer than one operation.
//
// The Repository expects exactly one writer context (spec: last writer wins,
// no concurrent-write contention) and therefore holds no locks.
type Repository struct {
	store domain.BlobStore

	pets         []domain.Pet
	walks        []domain.Walk
	users        map[string]domain.UserProfile // keyed by email
	walkerStats  map[string]domain.WalkerStats // keyed by walker id
	walkerRoutes map[string][]string           // walker id -> opted-in route ids
}

// NewRepository binds a Repository to the given blob store and loads every
// collection from it. Absent or malformed blobs fall back to empty
// collections, so a first run against an empty store succeeds silently.
func NewRepository(store domain.BlobStore) (*Repository, error) {
	repo := &Repository{
		store:        store,
		users:        make(map[string]domain.UserProfile),
		walkerStats:  make(map[string]domain.WalkerStats),
		walkerRoutes: make(map[string][]string),
	}

	if err := repo.loadPets(); err != nil {
		return nil, err
	}
	if err := repo.loadWalks(); err != nil {
		return nil, err
	}
	if err := repo.loadUsers(); err != nil {
		return nil, err
	}
	if err := repo.loadWalkerStats(); err != nil {
		return nil, err
	}
	if err := repo.loadWalkerRoutes(); err != nil {
		return nil, err
	}

	return repo, nil
}

// Close releases the backing blob store.
func (repo *Repository) Close() error {
	err := repo.store.Close()
	if err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}

// getBlob reads a raw blob, translating "absent" into an empty string.
// Only real store failures surface as errors.
func (repo *Repository) getBlob(key string) (string, error) {
	raw, ok, err := repo.store.Get(key)
	if err != nil {
		return "", fmt.Errorf("loading %s : %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return raw, nil
}

// persist writes a collection back as JSON under its key.
func (repo *Repository) persist(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s : %w", key, err)
	}
	if err := repo.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persisting %s : %w", key, err)
	}
	return nil
}

func (repo *Repository) loadPets() error {
	raw, err := repo.getBlob(keyPets)
	if err != nil {
		return err
	}

	var pets []domain.Pet
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &pets); err != nil {
			// Malformed blobs are treated as absent so a bad write cannot
			// brick startup.
			pets = nil
		}
	}
	repo.pets = pets
	return nil
}

func (repo *Repository) loadWalks() error {
	raw, err := repo.getBlob(keyWalks)
	if err != nil {
		return err
	}

	var walks []domain.Walk
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &walks); err != nil {
			walks = nil
		}
	}
	repo.walks = walks
	return nil
}

func (repo *Repository) loadUsers() error {
	raw, err := repo.getBlob(keyAllUsers)
	if err != nil {
		return err
	}

	users := make(map[string]domain.UserProfile)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			users = make(map[string]domain.UserProfile)
		}
	}
	repo.users = users
	return nil
}

func (repo *Repository) loadWalkerStats() error {
	raw, err := repo.getBlob(keyWalkerStats)
	if err != nil {
		return err
	}

	stats := make(map[string]domain.WalkerStats)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &stats); err != nil {
			stats = make(map[string]domain.WalkerStats)
		}
	}
	repo.walkerStats = stats
	return nil
}

func (repo *Repository) loadWalkerRoutes() error {
	raw, err := repo.getBlob(keyWalkerRoutes)
	if err != nil {
		return err
	}

	routes := make(map[string][]string)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &routes); err != nil {
			routes = make(map[string][]string)
		}
	}
	repo.walkerRoutes = routes
	return nil
}
