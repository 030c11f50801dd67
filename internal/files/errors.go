package files

import "errors"

var (
	ErrNotFound     = errors.New("file not found")
	ErrMissingFile  = errors.New("file is required")
	ErrInvalidName  = errors.New("invalid file name")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
)
