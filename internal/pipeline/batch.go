package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-convert/internal/extraction"
	"github.com/jonathan/resume-convert/internal/output"
	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ManifestFile is the name of the batch summary written to the output directory.
const ManifestFile = "manifest.json"

// File statuses recorded in the manifest.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

// BatchOptions holds configuration for converting a directory of documents
type BatchOptions struct {
	InputDir   string
	OutputDir  string
	Workers    int // values below 1 mean 1
	Indent     int
	Parser     *parsing.Parser
	Extractor  *extraction.Dispatcher
	Logger     *zerolog.Logger
	OnProgress ProgressCallback
}

// FileResult records the outcome for one input file
type FileResult struct {
	Input    string   `json:"input"`
	Output   string   `json:"output,omitempty"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
	Sections []string `json:"sections,omitempty"`
}

// Manifest summarizes a batch run
type Manifest struct {
	RunID      uuid.UUID    `json:"run_id"`
	InputDir   string       `json:"input_dir"`
	OutputDir  string       `json:"output_dir"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Converted  int          `json:"converted"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	Files      []FileResult `json:"files"`
}

// Batch converts every supported document in InputDir into OutputDir. Each file
// is an independent Convert run; a failing file does not stop the others. The
// manifest is written to OutputDir even when some files fail, in which case a
// *BatchError is returned alongside it.
func Batch(ctx context.Context, opts BatchOptions) (*Manifest, error) {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	dispatcher := opts.Extractor
	if dispatcher == nil {
		dispatcher = extraction.NewDispatcher(extraction.WithLogger(log))
	}

	inputs, err := listInputs(opts.InputDir, dispatcher)
	if err != nil {
		return nil, err
	}
	outputs := outputNames(inputs)

	manifest := &Manifest{
		RunID:     uuid.New(),
		InputDir:  opts.InputDir,
		OutputDir: opts.OutputDir,
		StartedAt: time.Now().UTC(),
		Files:     make([]FileResult, len(inputs)),
	}
	log = log.With().Str("run_id", manifest.RunID.String()).Logger()
	log.Info().Int("files", len(inputs)).Int("workers", max(opts.Workers, 1)).Msg("starting batch")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, input := range inputs {
		manifest.Files[i] = FileResult{Input: input, Status: StatusSkipped}
		if gctx.Err() != nil {
			continue
		}
		outPath := filepath.Join(opts.OutputDir, outputs[i])
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := Convert(gctx, Options{
				InputPath:  filepath.Join(opts.InputDir, input),
				OutputPath: outPath,
				Indent:     opts.Indent,
				Parser:     opts.Parser,
				Extractor:  dispatcher,
				Logger:     &log,
				OnProgress: opts.OnProgress,
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn().Err(err).Str("input", input).Msg("conversion failed")
				manifest.Files[i] = FileResult{Input: input, Status: StatusFailed, Error: err.Error()}
				return nil
			}
			manifest.Files[i] = FileResult{
				Input:    input,
				Output:   outputs[i],
				Status:   StatusConverted,
				Sections: result.Report.Recognized(),
			}
			return nil
		})
	}

	waitErr := g.Wait()
	manifest.FinishedAt = time.Now().UTC()
	for _, f := range manifest.Files {
		switch f.Status {
		case StatusConverted:
			manifest.Converted++
		case StatusFailed:
			manifest.Failed++
		default:
			manifest.Skipped++
		}
	}

	data, err := output.Encode(manifest, output.DefaultIndent)
	if err != nil {
		return manifest, err
	}
	if err := output.WriteFile(filepath.Join(opts.OutputDir, ManifestFile), data); err != nil {
		return manifest, fmt.Errorf("failed to write manifest: %w", err)
	}

	log.Info().Int("converted", manifest.Converted).Int("failed", manifest.Failed).Int("skipped", manifest.Skipped).Msg("batch finished")

	if waitErr != nil {
		return manifest, waitErr
	}
	if manifest.Failed > 0 {
		return manifest, &BatchError{Failed: manifest.Failed, Total: len(inputs)}
	}
	return manifest, nil
}

// listInputs returns the names of supported, non-hidden regular files in dir, sorted.
func listInputs(dir string, dispatcher *extraction.Dispatcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var inputs []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if !dispatcher.Supports(filepath.Join(dir, name)) {
			continue
		}
		inputs = append(inputs, name)
	}
	sort.Strings(inputs)
	return inputs, nil
}

// outputNames maps each input to "<stem>.json", falling back to "<name>.json"
// when two inputs share a stem or the stem would collide with the manifest.
func outputNames(inputs []string) []string {
	stems := make(map[string]int, len(inputs))
	for _, in := range inputs {
		stems[strings.TrimSuffix(in, filepath.Ext(in))]++
	}

	names := make([]string, len(inputs))
	for i, in := range inputs {
		stem := strings.TrimSuffix(in, filepath.Ext(in))
		name := stem + ".json"
		if stems[stem] > 1 || name == ManifestFile {
			name = in + ".json"
		}
		names[i] = name
	}
	return names
}
