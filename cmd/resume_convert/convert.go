package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-convert/internal/config"
	"github.com/jonathan/resume-convert/internal/observability"
	"github.com/jonathan/resume-convert/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	convertLayout string
	convertIndent int
	convertReport bool
	convertQuiet  bool
)

func init() {
	rootCmd.Flags().StringVar(&convertLayout, "layout", "", "PDF text layout: rows or plain (default from config, rows)")
	rootCmd.Flags().IntVar(&convertIndent, "indent", 4, "Spaces per JSON nesting level")
	rootCmd.Flags().BoolVar(&convertReport, "report", false, "Print which sections were recognized")
	rootCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "Suppress the extracted text and JSON diagnostics")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	inputPath, outputPath := args[0], args[1]

	env, err := loadRuntime(cmd, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("layout") {
			cfg.Layout = convertLayout
		}
		if flags.Changed("indent") {
			cfg.Indent = convertIndent
		}
		if flags.Changed("quiet") {
			cfg.Quiet = convertQuiet
		}
	})
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	var diagnostics io.Writer
	if !env.cfg.Quiet {
		diagnostics = stdout
	}

	result, err := pipeline.Convert(cmd.Context(), pipeline.Options{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Indent:      env.cfg.Indent,
		Parser:      env.parser,
		Extractor:   env.extractor,
		Diagnostics: diagnostics,
		Logger:      &env.logger,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	printer := observability.NewPrinter(stdout)
	if verbose {
		printer.PrintResume(result.Resume)
	}
	if convertReport {
		printer.PrintReport(result.Report)
	}

	_, _ = fmt.Fprintf(stdout, "Resume has been successfully converted to JSON format and saved to %s\n", outputPath)
	return nil
}
