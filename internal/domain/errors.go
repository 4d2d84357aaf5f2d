package domain

import (
	"errors"
	"strconv"
)

// Domain errors
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidPDF     = errors.New("invalid pdf")
	ErrEncryptedPDF   = errors.New("pdf requires a password")
	ErrPageOutOfRange = errors.New("page out of range")
)

// PageError reports a failure extracting text from a single page (1-indexed)
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return "page " + strconv.Itoa(e.Page) + ": " + e.Err.Error()
}

func (e *PageError) Unwrap() error {
	return e.Err
}
