package files

import "time"

// File represents one stored file's metadata plus payload.
type File struct {
	ID           int64
	StorageName  string
	OriginalName string
	SizeBytes    int64
	MimeType     string
	Data         []byte
	CreatedAt    time.Time
}
