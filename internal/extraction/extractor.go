package extraction

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// Content types handled by the dispatcher.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// Extractor returns the plain text of a document in reading order.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Layout selects how PDF text is reassembled.
type Layout string

const (
	// LayoutRows rebuilds lines from positioned text rows, top to bottom.
	LayoutRows Layout = "rows"
	// LayoutPlain keeps the content-stream order of each page and breaks lines
	// where the baseline moves.
	LayoutPlain Layout = "plain"
)

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutRows, LayoutPlain:
		return Layout(s), nil
	case "":
		return LayoutRows, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %q or %q)", s, LayoutRows, LayoutPlain)
	}
}

type options struct {
	layout Layout
	logger zerolog.Logger
}

// Option configures extractors
type Option func(*options)

// WithLayout sets the PDF layout mode.
func WithLayout(layout Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// WithLogger sets the logger for extraction progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{layout: LayoutRows, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Dispatcher detects a file's content type and delegates to the matching extractor.
type Dispatcher struct {
	byMIME map[string]Extractor
	logger zerolog.Logger
}

// NewDispatcher returns a Dispatcher for PDF, DOCX and plain-text documents.
func NewDispatcher(opts ...Option) *Dispatcher {
	o := buildOptions(opts)
	return &Dispatcher{
		byMIME: map[string]Extractor{
			MIMEPDF:  NewPDFExtractor(opts...),
			MIMEDOCX: &DOCXExtractor{logger: o.logger},
			MIMEText: &TextExtractor{},
		},
		logger: o.logger,
	}
}

// Supports reports whether the dispatcher can extract path, judged by content.
func (d *Dispatcher) Supports(path string) bool {
	_, ok, err := d.lookup(path)
	return err == nil && ok
}

func (d *Dispatcher) lookup(path string) (Extractor, bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, false, err
	}
	for mime, ex := range d.byMIME {
		if mtype.Is(mime) {
			return ex, true, nil
		}
	}
	return nil, false, &UnsupportedTypeError{Path: path, MIME: mtype.String()}
}

// Extract implements Extractor.
func (d *Dispatcher) Extract(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &ExtractionError{Path: path, Message: "cannot access file", Cause: err}
	}
	ex, _, err := d.lookup(path)
	if err != nil {
		var unsupported *UnsupportedTypeError
		if errors.As(err, &unsupported) {
			return "", err
		}
		return "", &ExtractionError{Path: path, Message: "failed to detect content type", Cause: err}
	}
	d.logger.Debug().Str("path", path).Str("extractor", fmt.Sprintf("%T", ex)).Msg("extracting text")
	return ex.Extract(ctx, path)
}

// ExtractFile extracts the text of path with a default Dispatcher.
func ExtractFile(ctx context.Context, path string, opts ...Option) (string, error) {
	return NewDispatcher(opts...).Extract(ctx, path)
}

// TextExtractor reads plain-text files as-is.
type TextExtractor struct{}

// Extract implements Extractor.
func (TextExtractor) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return string(data), nil
}
