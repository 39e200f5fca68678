// Package output serializes a parsed Resume as indented UTF-8 JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-convert/internal/types"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Encode renders v as JSON indented by indent spaces. Non-ASCII text and HTML
// characters are written literally. The result ends with a newline.
func Encode(v any, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, fmt.Errorf("indent must be non-negative, got %d", indent)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses JSON produced by Encode back into a Resume.
func Decode(data []byte) (*types.Resume, error) {
	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

// WriteFile writes data to path, creating the parent directory. The data goes
// to a temporary file in the same directory first and is renamed into place, so
// path never holds partial output.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}

// WriteResume encodes resume and writes it to path.
func WriteResume(path string, resume *types.Resume, indent int) error {
	data, err := Encode(resume, indent)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}
