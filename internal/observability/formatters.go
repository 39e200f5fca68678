// Package observability provides logging setup and formatted diagnostic output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/jonathan/resume-convert/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles diagnostic output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedText writes the raw extracted text under an "Extracted Text:" heading.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExtractedText(text string) {
	fmt.Fprintf(p.out, "Extracted Text:\n%s\n", text)
}

// PrintResumeJSON writes the encoded resume under a "Parsed Resume JSON:" heading.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResumeJSON(encoded []byte) {
	fmt.Fprintf(p.out, "Parsed Resume JSON:\n%s", encoded)
	if len(encoded) == 0 || encoded[len(encoded)-1] != '\n' {
		fmt.Fprintln(p.out)
	}
}

// PrintResume outputs a human-readable summary of the parsed sections.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if pd := resume.PersonalDetails; pd != nil {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", pd.Name))
		sb.WriteString(fmt.Sprintf("Emails:    %s\n", strings.Join(pd.Emails, ", ")))
		sb.WriteString(fmt.Sprintf("Languages: %s\n", strings.Join(pd.Languages, ", ")))
		sb.WriteString("\n")
	}

	if resume.Education != nil {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(*resume.Education)))
		writeItems(&sb, *resume.Education, func(e types.EducationEntry) string {
			return fmt.Sprintf("%s, %s (%s)", e.Degree, e.Institution, e.Year)
		})
	}

	if resume.Skills != nil {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(*resume.Skills)))
		writeItems(&sb, *resume.Skills, func(s string) string { return s })
	}

	if resume.Experience != nil {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(*resume.Experience)))
		writeItems(&sb, *resume.Experience, func(e types.ExperienceEntry) string {
			return fmt.Sprintf("%s @ %s", e.Title, e.Company)
		})
	}

	if resume.Projects != nil {
		sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(*resume.Projects)))
		writeItems(&sb, *resume.Projects, func(e types.ProjectEntry) string { return e.Title })
	}

	if resume.Certifications != nil {
		sb.WriteString(fmt.Sprintf("Certifications (%d):\n", len(*resume.Certifications)))
		writeItems(&sb, *resume.Certifications, func(e types.CertificationEntry) string { return e.Title })
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "No sections recognized"
	}
	p.printBox("PARSED RESUME", content)
}

func writeItems[T any](sb *strings.Builder, items []T, label func(T) string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", label(items[i])))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintReport outputs which sections were attempted and which were recognized.
func (p *Printer) PrintReport(report *parsing.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for _, s := range report.Sections {
		if s.Found {
			sb.WriteString(fmt.Sprintf("✓ %-18s %d record(s)\n", s.Name, s.Records))
		} else {
			sb.WriteString(fmt.Sprintf("✗ %-18s not found\n", s.Name))
		}
	}
	sb.WriteString(fmt.Sprintf("\nRecognized %d of %d sections", len(report.Recognized()), len(report.Sections)))

	p.printBox("SECTION REPORT", sb.String())
}
