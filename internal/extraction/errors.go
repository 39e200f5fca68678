// Package extraction reads the plain text of resume documents (PDF, DOCX, text).
package extraction

import "fmt"

// ExtractionError represents a failure to open or read a document
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError is returned when no extractor handles the detected content type
type UnsupportedTypeError struct {
	Path string
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %s: %s", e.MIME, e.Path)
}
