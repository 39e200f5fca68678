// Package main provides the resume_convert CLI, which turns template-formatted
// resume documents into structured JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_convert <input.pdf> <output.json>",
	Short: "Convert a PDF resume to JSON",
	Long: `Converts a resume written in the fixed "Label: value" template into a JSON document.

The extracted text and the parsed JSON are printed to stdout before the output
file is written. Sections that cannot be located are omitted from the result.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runConvert,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a section summary and enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
