package util

import (
	"errors"
	"strings"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
// It is applied to the internal storage name only; the client-supplied name
// is stored verbatim elsewhere.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") || strings.ContainsRune(name, 0) {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
