package parsing

import "strings"

// NormalizeText converts CRLF and lone CR line endings to LF so that the
// line-anchored patterns behave the same for text from any extractor.
func NormalizeText(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitList splits a comma-separated value and trims each element.
// Empty elements are kept: "a,,b" yields ["a", "", "b"] and "" yields [""].
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// splitLines returns every line of a trimmed section body, each trimmed.
// An empty body yields an empty, non-nil slice.
func splitLines(body string) []string {
	body = strings.TrimSpace(body)
	if body == "" {
		return []string{}
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
