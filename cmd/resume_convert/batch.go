package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-convert/internal/config"
	"github.com/jonathan/resume-convert/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every resume in a directory",
	Long: `Converts every supported document (PDF, DOCX or plain text) in a directory.
Each file is converted independently; failures are recorded in manifest.json
in the output directory and make the command exit non-zero.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

var (
	batchInput   string
	batchOutput  string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Directory of resumes to convert (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Directory for JSON output (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of files converted concurrently (default from config, 4)")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	env, err := loadRuntime(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("workers") {
			cfg.Workers = batchWorkers
		}
	})
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	manifest, err := pipeline.Batch(cmd.Context(), pipeline.BatchOptions{
		InputDir:  batchInput,
		OutputDir: batchOutput,
		Workers:   env.cfg.Workers,
		Indent:    env.cfg.Indent,
		Parser:    env.parser,
		Extractor: env.extractor,
		Logger:    &env.logger,
	})
	if manifest != nil {
		for _, f := range manifest.Files {
			switch f.Status {
			case pipeline.StatusConverted:
				_, _ = fmt.Fprintf(stdout, "✓ %s -> %s\n", f.Input, f.Output)
			case pipeline.StatusFailed:
				_, _ = fmt.Fprintf(stdout, "✗ %s: %s\n", f.Input, f.Error)
			default:
				_, _ = fmt.Fprintf(stdout, "- %s: %s\n", f.Input, f.Status)
			}
		}
		_, _ = fmt.Fprintf(stdout, "Converted %d, failed %d, skipped %d. Manifest: %s\n",
			manifest.Converted, manifest.Failed, manifest.Skipped,
			filepath.Join(batchOutput, pipeline.ManifestFile))
	}
	if err != nil {
		var batchErr *pipeline.BatchError
		if errors.As(err, &batchErr) {
			return err
		}
		return fmt.Errorf("batch conversion failed: %w", err)
	}
	return nil
}
