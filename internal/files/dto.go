package files

import "time"

type uploadResponse struct {
	Message  string `json:"message"`
	FileID   int64  `json:"fileId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// fileSummary is the outward-facing listing entry. Payload bytes are never
// included.
type fileSummary struct {
	ID           int64     `json:"id"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	UploadDate   time.Time `json:"upload_date"`
}

func toSummary(f File) fileSummary {
	return fileSummary{
		ID:           f.ID,
		OriginalName: f.OriginalName,
		FileSize:     f.SizeBytes,
		MimeType:     f.MimeType,
		UploadDate:   f.CreatedAt,
	}
}
