package files

import "context"

// Repo defines persistence operations for stored files. Every method maps to
// a single atomic backend call; implementations must be safe for concurrent
// use.
type Repo interface {
	// Create persists metadata and payload in one write and returns the
	// record with its store-assigned ID and CreatedAt populated.
	Create(ctx context.Context, f File) (File, error)
	// List returns metadata for every stored file, newest first. Payloads
	// are never loaded. An empty catalog yields an empty slice, not an error.
	List(ctx context.Context) ([]File, error)
	// GetByID returns the full record including payload, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (File, error)
	// Delete removes a record and reports whether it existed. A missing id
	// is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
