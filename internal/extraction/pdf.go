package extraction

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// PDFExtractor extracts text from PDF files.
type PDFExtractor struct {
	layout Layout
	logger zerolog.Logger
}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor(opts ...Option) *PDFExtractor {
	o := buildOptions(opts)
	return &PDFExtractor{layout: o.layout, logger: o.logger}
}

// Extract implements Extractor. Pages are joined with a newline.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	// The pdf package panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Path: path, Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := e.pageText(page)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: fmt.Sprintf("failed to extract page %d", i), Cause: err}
		}
		pages = append(pages, pageText)
	}

	e.logger.Debug().Str("path", path).Int("pages", numPages).Str("layout", string(e.layout)).Msg("extracted PDF text")
	return strings.Join(pages, "\n"), nil
}

func (e *PDFExtractor) pageText(page pdf.Page) (string, error) {
	if e.layout == LayoutPlain {
		return streamText(page.Content().Text), nil
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	return rowsToText(rows), nil
}

const (
	// gapRatio is the horizontal gap, relative to font size, treated as a word break.
	gapRatio = 0.15
	// baselineRatio is the vertical move, relative to font size, treated as a new line.
	baselineRatio = 0.5
)

// streamText renders glyphs in content-stream order, starting a new line
// whenever the baseline moves.
func streamText(texts []pdf.Text) string {
	var sb strings.Builder
	for i, t := range texts {
		if i > 0 {
			prev := texts[i-1]
			switch {
			case math.Abs(t.Y-prev.Y) > prev.FontSize*baselineRatio:
				sb.WriteByte('\n')
			case t.X-(prev.X+prev.W) > t.FontSize*gapRatio:
				current := sb.String()
				if !strings.HasSuffix(current, " ") && !strings.HasPrefix(t.S, " ") {
					sb.WriteByte(' ')
				}
			}
		}
		sb.WriteString(t.S)
	}

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// rowsToText renders rows top to bottom, each row's fragments left to right.
func rowsToText(rows pdf.Rows) string {
	sorted := make(pdf.Rows, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			sorted = append(sorted, row)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})

	lines := make([]string, 0, len(sorted))
	for _, row := range sorted {
		lines = append(lines, rowText(row.Content))
	}
	return strings.Join(lines, "\n")
}

func rowText(content pdf.TextHorizontal) string {
	words := make(pdf.TextHorizontal, len(content))
	copy(words, content)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].X < words[j].X
	})

	var sb strings.Builder
	var prevEnd float64
	for i, w := range words {
		if i > 0 && w.X-prevEnd > w.FontSize*gapRatio {
			current := sb.String()
			if !strings.HasSuffix(current, " ") && !strings.HasPrefix(w.S, " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(w.S)
		prevEnd = w.X + w.W
	}
	return strings.TrimRight(sb.String(), " ")
}
