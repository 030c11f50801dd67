package files

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured and by tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   []File
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a new record, assigning the next id and the current time.
func (r *MemoryRepo) Create(ctx context.Context, f File) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	f.CreatedAt = time.Now().UTC()
	// Stored records are read-only; keep our own copy of the payload.
	f.Data = append([]byte(nil), f.Data...)
	r.data = append(r.data, f)
	return f, nil
}

// List returns metadata for all files, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]File, 0, len(r.data))
	for _, f := range r.data {
		f.Data = nil
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns the full record including payload.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (File, error) {
	if err := ctx.Err(); err != nil {
		return File{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.data {
		if f.ID == id {
			f.Data = append([]byte(nil), f.Data...)
			return f, nil
		}
	}
	return File{}, ErrNotFound
}

// Delete removes a record and reports whether it existed.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.data {
		if f.ID == id {
			r.data = append(r.data[:i], r.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ Repo = (*MemoryRepo)(nil)
