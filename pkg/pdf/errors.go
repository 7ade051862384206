package pdf

import "errors"

// Sentinel errors distinguishing why a document could not be opened.
// Backends wrap these with fmt.Errorf and %w so callers can test with
// errors.Is regardless of which backend produced the failure.
var (
	// ErrEncrypted indicates the document is password protected.
	ErrEncrypted = errors.New("pdf: document is encrypted")

	// ErrNotReadable indicates the file is missing or not a PDF.
	ErrNotReadable = errors.New("pdf: document is not readable")

	// ErrCorrupt indicates the container parsed but failed validation.
	ErrCorrupt = errors.New("pdf: document is corrupt")
)
