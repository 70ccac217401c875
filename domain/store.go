package domain

// BlobStore is the flat key-value store backing the repository. Values are
// JSON-encoded collections or plain scalars; keys are fixed per collection.
//
// The store assumes a single writer context. Implementations do not need to
// coordinate concurrent access.
type BlobStore interface {
	// Get returns the blob stored under key, reporting false when absent.
	Get(key string) (string, bool, error)

	// Set stores the blob under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(keys ...string) error

	// Close releases the backing resources.
	Close() error
}
