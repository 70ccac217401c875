package db

import "github.com/pawsandgo/pawsgo/domain"

var _ domain.BlobStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory BlobStore. It backs repository tests and
// throwaway demo sessions where nothing should touch disk. Like the SQLite
// store it assumes a single writer context and does no locking.
type MemoryStore struct {
	blobs map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]string),
	}
}

// Get implements the domain.BlobStore interface.
func (store *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := store.blobs[key]
	return value, ok, nil
}

// Set implements the domain.BlobStore interface.
func (store *MemoryStore) Set(key, value string) error {
	store.blobs[key] = value
	return nil
}

// Delete implements the domain.BlobStore interface.
func (store *MemoryStore) Delete(keys ...string) error {
	for _, key := range keys {
		delete(store.blobs, key)
	}
	return nil
}

// Close implements the domain.BlobStore interface. It is a no-op.
func (store *MemoryStore) Close() error {
	return nil
}
