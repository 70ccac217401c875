package db

import (
	"encoding/json"
	"sort"

	"github.com/pawsandgo/pawsgo/domain"
)

var _ domain.UserRepository = (*Repository)(nil)

// demoProfile is returned by GetUserProfile when no profile has been saved yet.
var demoProfile = domain.UserProfile{
	ID:    "demo",
	Name:  "Usuario Demo",
	Phone: "000",
	Email: "demo@email.com",
	Role:  domain.RoleOwner,
}

// PerformLogin implements the domain.UserRepository interface.
// A hit stores the profile as the current one and establishes the session; a
// miss creates nothing.
func (repo *Repository) PerformLogin(email string) (domain.UserProfile, bool, error) {
	profile, ok := repo.users[email]
	if !ok {
		return domain.UserProfile{}, false, nil
	}

	if err := repo.SaveUserProfile(profile); err != nil {
		return profile, true, err
	}
	if err := repo.SaveSession(profile.ID, profile.Role); err != nil {
		return profile, true, err
	}
	return profile, true, nil
}

// SaveSession implements the domain.UserRepository interface.
// The session is stored as two plain scalars, not JSON.
func (repo *Repository) SaveSession(userID, role string) error {
	if err := repo.store.Set(keyUserID, userID); err != nil {
		return err
	}
	return repo.store.Set(keyUserRole, role)
}

// CurrentSession implements the domain.UserRepository interface.
// It reports false when either scalar is missing or unreadable.
func (repo *Repository) CurrentSession() (domain.Session, bool) {
	userID, ok, err := repo.store.Get(keyUserID)
	if err != nil || !ok {
		return domain.Session{}, false
	}
	role, ok, err := repo.store.Get(keyUserRole)
	if err != nil || !ok {
		return domain.Session{}, false
	}
	return domain.Session{UserID: userID, Role: role}, true
}

// ClearSession implements the domain.UserRepository interface.
// Logging out also drops the current profile blob.
func (repo *Repository) ClearSession() error {
	return repo.store.Delete(keyUserID, keyUserRole, keyUserProfile)
}

// SaveUserProfile implements the domain.UserRepository interface.
// Profiles with a non-empty email are also upserted into the registered-user
// index, which is the only path into PerformLogin.
func (repo *Repository) SaveUserProfile(profile domain.UserProfile) error {
	if err := repo.persist(keyUserProfile, profile); err != nil {
		return err
	}

	if profile.Email != "" {
		repo.users[profile.Email] = profile
		return repo.persist(keyAllUsers, repo.users)
	}
	return nil
}

// GetUserProfile implements the domain.UserRepository interface.
// It never fails; with nothing saved (or an unreadable blob) the demo profile
// is returned.
func (repo *Repository) GetUserProfile() domain.UserProfile {
	raw, ok, err := repo.store.Get(keyUserProfile)
	if err != nil || !ok {
		return demoProfile
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return demoProfile
	}
	return profile
}

// AllWalkerProfiles implements the domain.UserRepository interface.
// Results are ordered by email so callers get a stable listing.
func (repo *Repository) AllWalkerProfiles() []domain.UserProfile {
	var walkers []domain.UserProfile
	for _, profile := range repo.users {
		if profile.Role == domain.RoleWalker {
			walkers = append(walkers, profile)
		}
	}
	sort.Slice(walkers, func(i, j int) bool {
		return walkers[i].Email < walkers[j].Email
	})
	return walkers
}
