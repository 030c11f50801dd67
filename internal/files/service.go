package files

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"filebox-backend/internal/shared/util"
)

// MaxUploadBytes is the payload size ceiling. Uploads of exactly this many
// bytes succeed; one byte more is rejected.
const MaxUploadBytes = 16 << 20 // 16 MiB

// Service contains business logic for stored files.
type Service struct {
	Repo Repo
}

// Upload validates the payload, derives the internal storage name, and
// persists the record. The payload is stored byte-identical.
func (s *Service) Upload(ctx context.Context, originalName, mimeType string, data []byte) (File, error) {
	if originalName == "" {
		return File{}, ErrMissingFile
	}
	sanitized, err := util.SanitizeFileName(originalName)
	if err != nil {
		return File{}, ErrInvalidName
	}
	if len(data) == 0 {
		return File{}, ErrEmptyFile
	}
	if int64(len(data)) > MaxUploadBytes {
		return File{}, ErrFileTooLarge
	}

	f := File{
		StorageName:  storageName(sanitized, time.Now().UTC()),
		OriginalName: originalName,
		SizeBytes:    int64(len(data)),
		MimeType:     mimeType,
		Data:         data,
	}
	return s.Repo.Create(ctx, f)
}

// List returns metadata for every stored file, newest first.
func (s *Service) List(ctx context.Context) ([]File, error) {
	return s.Repo.List(ctx)
}

// Get returns the full record for an id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (File, error) {
	return s.Repo.GetByID(ctx, id)
}

// Delete removes a record. Deleting an unknown id returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// storageName derives the internal, never-reused name for a file. The clock
// prefix keeps names roughly sortable; the random suffix makes two uploads of
// the same filename within the same millisecond still unique.
func storageName(sanitized string, now time.Time) string {
	return fmt.Sprintf("%d-%s-%s", now.UnixMilli(), uuid.NewString(), sanitized)
}
