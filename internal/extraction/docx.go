package extraction

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"
)

// DOCXExtractor extracts paragraph text from Word documents.
type DOCXExtractor struct {
	logger zerolog.Logger
}

// Extract implements Extractor.
func (e *DOCXExtractor) Extract(_ context.Context, path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read docx", Cause: err}
	}
	defer doc.Close()

	text := documentXMLToText(doc.Editable().GetContent())
	e.logger.Debug().Str("path", path).Int("chars", len(text)).Msg("extracted DOCX text")
	return text, nil
}

var (
	deletedText  = regexp.MustCompile(`(?s)<w:delText\b[^>]*>.*?</w:delText>`)
	fieldCode    = regexp.MustCompile(`(?s)<w:instrText\b[^>]*>.*?</w:instrText>`)
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	lineBreak    = regexp.MustCompile(`<w:(?:br|cr)\b[^>]*/>`)
	tab          = regexp.MustCompile(`<w:tab\b[^>]*/>`)
	anyTag       = regexp.MustCompile(`<[^>]+>`)
)

// documentXMLToText flattens WordprocessingML into one line per paragraph.
// Tracked deletions and field instructions are not visible text and are dropped.
func documentXMLToText(xml string) string {
	xml = deletedText.ReplaceAllString(xml, "")
	xml = fieldCode.ReplaceAllString(xml, "")
	xml = paragraphEnd.ReplaceAllString(xml, "\n")
	xml = lineBreak.ReplaceAllString(xml, "\n")
	xml = tab.ReplaceAllString(xml, "\t")
	xml = anyTag.ReplaceAllString(xml, "")
	return strings.TrimRight(html.UnescapeString(xml), "\n")
}
