package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/resume-convert/internal/extraction"
	"github.com/jonathan/resume-convert/internal/output"
	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/jonathan/resume-convert/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = `Name : Jane Doe
Phone : 555-1234
Email : jane@example.com
Address : 1 Main St
Date of Birth : 1990-01-01
Languages : English, French
Gender : F
Marital Status : Single
Skills
Go
SQL
Experience
Title : Engineer
Company : Acme
Duration : 2019-2023
Key Skills : Go, SQL
Description : Built things
`

// stubExtractor returns fixed text or a fixed error.
type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func TestConvert_WritesJSONAndDiagnostics(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "resume.json")
	var diag bytes.Buffer
	var steps []string

	result, err := Convert(context.Background(), Options{
		InputPath:   "resume.pdf",
		OutputPath:  outPath,
		Extractor:   stubExtractor{text: resumeText},
		Diagnostics: &diag,
		OnProgress:  func(e ProgressEvent) { steps = append(steps, e.Step) },
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, result.JSON, data)
	assert.True(t, strings.HasPrefix(string(data), "{\n    \"personal_details\""))
	assert.NoError(t, schemas.ValidateResumeJSON(data))

	decoded, err := output.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, result.Resume, decoded)

	diagText := diag.String()
	textIdx := strings.Index(diagText, "Extracted Text:\n"+resumeText)
	jsonIdx := strings.Index(diagText, "Parsed Resume JSON:\n"+string(data))
	assert.GreaterOrEqual(t, textIdx, 0)
	assert.Greater(t, jsonIdx, textIdx)

	assert.Equal(t, []string{StepExtract, StepParse, StepValidate, StepWrite}, steps)
	assert.Equal(t, []string{"personal_details", "skills", "experience"}, result.Report.Recognized())
}

func TestConvert_ExtractionFailureWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resume.json")
	var diag bytes.Buffer
	extractErr := errors.New("corrupt PDF")

	result, err := Convert(context.Background(), Options{
		InputPath:   "resume.pdf",
		OutputPath:  outPath,
		Extractor:   stubExtractor{err: extractErr},
		Diagnostics: &diag,
	})

	assert.Nil(t, result)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepExtract, stepErr.Step)
	assert.ErrorIs(t, err, extractErr)
	assert.NoFileExists(t, outPath)
	assert.Empty(t, diag.String())
}

func TestConvert_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "resume.json")

	_, err := Convert(context.Background(), Options{
		InputPath:  filepath.Join(dir, "missing.pdf"),
		OutputPath: outPath,
	})

	var extractionErr *extraction.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.NoFileExists(t, outPath)
}

func TestConvert_CustomParserAndIndent(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resume.json")
	parser, err := parsing.NewParser(parsing.WithSectionOrder([]string{parsing.HeaderSkills}))
	require.NoError(t, err)

	result, err := Convert(context.Background(), Options{
		InputPath:  "resume.txt",
		OutputPath: outPath,
		Indent:     2,
		Parser:     parser,
		Extractor:  stubExtractor{text: resumeText},
	})
	require.NoError(t, err)

	assert.Nil(t, result.Resume.Experience)
	require.NotNil(t, result.Resume.Skills)
	assert.Contains(t, *result.Resume.Skills, "Experience")
	assert.True(t, strings.HasPrefix(string(result.JSON), "{\n  \"personal_details\""))
}

func TestConvert_CancelledContextWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "resume.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Convert(ctx, Options{
		InputPath:  "resume.txt",
		OutputPath: outPath,
		Extractor:  stubExtractor{text: resumeText},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, outPath)
}

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestBatch_ConvertsSupportedFiles(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeInput(t, inDir, "alice.txt", resumeText)
	writeInput(t, inDir, "bob.txt", strings.Replace(resumeText, "Jane Doe", "Bob Roe", 1))
	writeInput(t, inDir, ".hidden.txt", resumeText)
	writeInput(t, inDir, "photo.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

	var mu sync.Mutex
	seen := map[string]bool{}
	manifest, err := Batch(context.Background(), BatchOptions{
		InputDir:  inDir,
		OutputDir: outDir,
		Workers:   2,
		OnProgress: func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			seen[filepath.Base(e.Path)] = true
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, manifest.Converted)
	assert.Equal(t, 0, manifest.Failed)
	require.Len(t, manifest.Files, 2)
	assert.Equal(t, "alice.txt", manifest.Files[0].Input)
	assert.Equal(t, "alice.json", manifest.Files[0].Output)
	assert.Equal(t, StatusConverted, manifest.Files[1].Status)
	assert.Equal(t, map[string]bool{"alice.txt": true, "bob.txt": true}, seen)

	data, err := os.ReadFile(filepath.Join(outDir, "bob.json"))
	require.NoError(t, err)
	resume, err := output.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Bob Roe", resume.PersonalDetails.Name)

	manifestData, err := os.ReadFile(filepath.Join(outDir, ManifestFile))
	require.NoError(t, err)
	var written Manifest
	require.NoError(t, json.Unmarshal(manifestData, &written))
	assert.Equal(t, manifest.RunID, written.RunID)
	assert.Equal(t, 2, written.Converted)
}

func TestBatch_RecordsFailures(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeInput(t, inDir, "good.txt", resumeText)
	writeInput(t, inDir, "broken.pdf", "%PDF-1.4\nnot a real document\n")

	manifest, err := Batch(context.Background(), BatchOptions{
		InputDir:  inDir,
		OutputDir: outDir,
		Workers:   4,
	})

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Failed)
	assert.Equal(t, 2, batchErr.Total)

	require.NotNil(t, manifest)
	assert.Equal(t, 1, manifest.Converted)
	assert.Equal(t, 1, manifest.Failed)
	assert.Equal(t, "broken.pdf", manifest.Files[0].Input)
	assert.Equal(t, StatusFailed, manifest.Files[0].Status)
	assert.NotEmpty(t, manifest.Files[0].Error)
	assert.NoFileExists(t, filepath.Join(outDir, "broken.json"))
	assert.FileExists(t, filepath.Join(outDir, "good.json"))
	assert.FileExists(t, filepath.Join(outDir, ManifestFile))
}

func TestBatch_MissingInputDir(t *testing.T) {
	_, err := Batch(context.Background(), BatchOptions{
		InputDir:  filepath.Join(t.TempDir(), "missing"),
		OutputDir: t.TempDir(),
	})

	assert.Error(t, err)
}

func TestOutputNames(t *testing.T) {
	names := outputNames([]string{"a.docx", "a.pdf", "b.pdf", "manifest.txt", "notes"})

	assert.Equal(t, []string{"a.docx.json", "a.pdf.json", "b.json", "manifest.txt.json", "notes.json"}, names)
}
