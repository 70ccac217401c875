package db

import (
	"slices"

	"github.com/pawsandgo/pawsgo/domain"
)

var _ domain.WalkRepository = (*Repository)(nil)

// AddWalk implements the domain.WalkRepository interface.
func (repo *Repository) AddWalk(walk domain.Walk) error {
	repo.walks = append(repo.walks, walk)
	return repo.persist(keyWalks, repo.walks)
}

// GetWalk implements the domain.WalkRepository interface.
// It returns the first walk with the given id.
func (repo *Repository) GetWalk(id string) (domain.Walk, bool) {
	for _, walk := range repo.walks {
		if walk.ID == id {
			return walk, true
		}
	}
	return domain.Walk{}, false
}

// CancelWalk implements the domain.WalkRepository interface.
// An unknown id is a no-op and leaves the collection untouched.
func (repo *Repository) CancelWalk(id string) (bool, error) {
	return repo.setWalkStatus(id, domain.WalkCancelled)
}

// CompleteWalk implements the domain.WalkRepository interface.
// An unknown id is a no-op and leaves the collection untouched.
func (repo *Repository) CompleteWalk(id string) (bool, error) {
	return repo.setWalkStatus(id, domain.WalkCompleted)
}

// setWalkStatus replaces only the status field of the matching walk,
// preserving every other field.
func (repo *Repository) setWalkStatus(id, status string) (bool, error) {
	for i := range repo.walks {
		if repo.walks[i].ID == id {
			repo.walks[i].Status = status
			return true, repo.persist(keyWalks, repo.walks)
		}
	}
	return false, nil
}

// AddMessageToWalk implements the domain.WalkRepository interface.
// The message is appended after the existing history; order is preserved.
func (repo *Repository) AddMessageToWalk(walkID string, msg domain.ChatMessage) (bool, error) {
	for i := range repo.walks {
		if repo.walks[i].ID == walkID {
			repo.walks[i].ChatHistory = append(repo.walks[i].ChatHistory, msg)
			return true, repo.persist(keyWalks, repo.walks)
		}
	}
	return false, nil
}

// UpdateWalk implements the domain.WalkRepository interface.
// An unknown id drops the update silently; the collection is persisted either way.
func (repo *Repository) UpdateWalk(walk domain.Walk) (bool, error) {
	found := false
	for i := range repo.walks {
		if repo.walks[i].ID == walk.ID {
			repo.walks[i] = walk
			found = true
			break
		}
	}
	return found, repo.persist(keyWalks, repo.walks)
}

// Walks implements the domain.WalkRepository interface.
func (repo *Repository) Walks() []domain.Walk {
	return slices.Clone(repo.walks)
}
