package parsing

import (
	"regexp"
	"strings"
)

// Section headers recognized in the resume template.
const (
	HeaderEducation      = "Education"
	HeaderSkills         = "Skills"
	HeaderExperience     = "Experience"
	HeaderProjects       = "Projects"
	HeaderCertifications = "Certifications"
	HeaderAwards         = "Awards"
)

// DefaultSectionOrder is the order in which sections must appear in the source text.
// Awards only terminates Certifications and is never extracted.
var DefaultSectionOrder = []string{
	HeaderEducation,
	HeaderSkills,
	HeaderExperience,
	HeaderProjects,
	HeaderCertifications,
	HeaderAwards,
}

// boundaryPattern builds the pattern isolating the body of header: the text after
// "<header>\n" up to the first occurrence of any following header, or to the end
// of the text when none of them occurs.
func boundaryPattern(header string, following []string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(regexp.QuoteMeta(header))
	sb.WriteString(`\n((?s:.*?))(?:`)
	for _, next := range following {
		sb.WriteString(regexp.QuoteMeta(next))
		sb.WriteString("|")
	}
	sb.WriteString(`\z)`)
	return regexp.MustCompile(sb.String())
}

// compileBoundaries builds one boundary pattern per header in order.
func compileBoundaries(order []string) map[string]*regexp.Regexp {
	boundaries := make(map[string]*regexp.Regexp, len(order))
	for i, header := range order {
		boundaries[header] = boundaryPattern(header, order[i+1:])
	}
	return boundaries
}

// findSection returns the raw, untrimmed body of a section.
func findSection(boundaries map[string]*regexp.Regexp, text, header string) (string, bool) {
	re, ok := boundaries[header]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
