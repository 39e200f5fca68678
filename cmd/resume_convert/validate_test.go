package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCommand_Success(t *testing.T) {
	path := writeJSON(t, `{"skills": ["Go"], "education": []}`)

	out, err := execute(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	path := writeJSON(t, `{"skills": "Go", "hobbies": []}`)

	out, err := execute(t, "validate", path)

	require.Error(t, err)
	assert.Contains(t, out, "Validation failed")
	assert.Contains(t, err.Error(), "does not match the schema")
}

func TestValidateCommand_WithSchemaFile(t *testing.T) {
	path := writeJSON(t, `{"skills": ["Go"]}`)
	schemaPath, err := filepath.Abs(filepath.Join("..", "..", "schemas", "resume.schema.json"))
	require.NoError(t, err)

	out, err := execute(t, "validate", "--schema", schemaPath, path)

	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed")
}

func TestValidateCommand_MissingSchemaFile(t *testing.T) {
	path := writeJSON(t, `{}`)

	_, err := execute(t, "validate", "--schema", "does/not/exist.json", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read JSON file")
}
