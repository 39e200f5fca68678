// Package pipeline sequences text extraction, section parsing, validation and
// JSON output for one document or a directory of documents.
package pipeline

import (
	"context"
	"io"

	"github.com/jonathan/resume-convert/internal/extraction"
	"github.com/jonathan/resume-convert/internal/observability"
	"github.com/jonathan/resume-convert/internal/output"
	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/jonathan/resume-convert/internal/schemas"
	"github.com/jonathan/resume-convert/internal/types"
	"github.com/rs/zerolog"
)

// ProgressEvent represents a progress update during conversion
type ProgressEvent struct {
	Step    string `json:"step"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs. In batch mode it is
// called from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for converting one document
type Options struct {
	InputPath  string
	OutputPath string
	Indent     int                  // 0 uses output.DefaultIndent
	Parser     *parsing.Parser      // nil uses the default section order
	Extractor  extraction.Extractor // nil uses a default Dispatcher
	// Diagnostics receives the extracted text and the encoded JSON before the
	// output file is written. nil disables diagnostics.
	Diagnostics io.Writer
	Logger      *zerolog.Logger
	OnProgress  ProgressCallback
}

// Result is the outcome of a successful conversion
type Result struct {
	InputPath  string
	OutputPath string
	Text       string
	Resume     *types.Resume
	Report     *parsing.Report
	JSON       []byte
}

func emitProgress(opts *Options, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Path: opts.InputPath, Message: message})
	}
}

func (o *Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

// Convert extracts, parses, validates and writes one document, strictly in that
// order. An extraction failure aborts the run before any output is produced.
func Convert(ctx context.Context, opts Options) (*Result, error) {
	log := opts.logger().With().Str("input", opts.InputPath).Logger()

	extractor := opts.Extractor
	if extractor == nil {
		extractor = extraction.NewDispatcher(extraction.WithLogger(log))
	}
	parser := opts.Parser
	if parser == nil {
		parser = parsing.Default()
	}
	var printer *observability.Printer
	if opts.Diagnostics != nil {
		printer = observability.NewPrinter(opts.Diagnostics)
	}

	emitProgress(&opts, StepExtract, "extracting text")
	text, err := extractor.Extract(ctx, opts.InputPath)
	if err != nil {
		return nil, &StepError{Step: StepExtract, Path: opts.InputPath, Cause: err}
	}
	if printer != nil {
		printer.PrintExtractedText(text)
	}

	emitProgress(&opts, StepParse, "parsing sections")
	resume, report := parser.ParseWithReport(text)
	log.Debug().Strs("recognized", report.Recognized()).Strs("missing", report.Missing()).Msg("parsed resume")

	indent := opts.Indent
	if indent == 0 {
		indent = output.DefaultIndent
	}
	encoded, err := output.Encode(resume, indent)
	if err != nil {
		return nil, &StepError{Step: StepEncode, Path: opts.InputPath, Cause: err}
	}
	if printer != nil {
		printer.PrintResumeJSON(encoded)
	}

	emitProgress(&opts, StepValidate, "validating output")
	if err := schemas.ValidateResumeJSON(encoded); err != nil {
		return nil, &StepError{Step: StepValidate, Path: opts.InputPath, Cause: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emitProgress(&opts, StepWrite, "writing "+opts.OutputPath)
	if err := output.WriteFile(opts.OutputPath, encoded); err != nil {
		return nil, &StepError{Step: StepWrite, Path: opts.InputPath, Cause: err}
	}
	log.Info().Str("output", opts.OutputPath).Int("sections", len(report.Recognized())).Msg("converted resume")

	return &Result{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Text:       text,
		Resume:     resume,
		Report:     report,
		JSON:       encoded,
	}, nil
}
