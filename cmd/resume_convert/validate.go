package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-convert/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a converted resume against the resume schema",
	Long:  "Validates a JSON file against the embedded resume schema, or against --schema when given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema file (default: embedded resume schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	jsonPath := args[0]

	var err error
	if validateSchema != "" {
		schemaPath := schemas.ResolveSchemaPath(validateSchema)
		if schemaPath == "" {
			return fmt.Errorf("schema file not found: %s", validateSchema)
		}
		err = schemas.ValidateJSON(schemaPath, jsonPath)
	} else {
		data, readErr := os.ReadFile(jsonPath)
		if readErr != nil {
			return fmt.Errorf("failed to read JSON file: %w", readErr)
		}
		err = schemas.ValidateResumeJSON(data)
	}

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %d error(s)\n", len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%s does not match the schema", jsonPath)
		}
		return fmt.Errorf("failed to validate %s: %w", jsonPath, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", jsonPath)
	return nil
}
