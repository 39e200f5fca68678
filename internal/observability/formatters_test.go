package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/jonathan/resume-convert/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintExtractedText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractedText("Name : Jane Doe")

	assert.Equal(t, "Extracted Text:\nName : Jane Doe\n", buf.String())
}

func TestPrintResumeJSON(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"with trailing newline", "{}\n", "Parsed Resume JSON:\n{}\n"},
		{"without trailing newline", "{}", "Parsed Resume JSON:\n{}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintResumeJSON([]byte(tt.encoded))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := []string{"Go", "Rust", "SQL", "Docker", "Helm", "Terraform", "Bash"}
	experience := []types.ExperienceEntry{{Title: "Engineer", Company: "Acme Corp"}}
	resume := &types.Resume{
		PersonalDetails: &types.PersonalDetails{
			Name:      "Jane Doe",
			Emails:    []string{"jane@example.com"},
			Languages: []string{"English", "French"},
		},
		Skills:     &skills,
		Experience: &experience,
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "English, French")
	assert.Contains(t, output, "Skills (7)")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Engineer @ Acme Corp")
	assert.NotContains(t, output, "Education")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(&types.Resume{})

	assert.Contains(t, buf.String(), "No sections recognized")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	_, report := parsing.ParseWithReport("Skills\nGo\nRust\n")
	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "SECTION REPORT")
	assert.Contains(t, output, "✓ skills")
	assert.Contains(t, output, "2 record(s)")
	assert.Contains(t, output, "✗ education")
	assert.Contains(t, output, "Recognized 1 of 6 sections")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
