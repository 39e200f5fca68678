package parsing

import (
	"regexp"
	"strings"
)

// Field is one labeled line of a record. Labels lists accepted spellings of the
// label; the first one is canonical.
type Field struct {
	Key    string
	Labels []string
}

// RecordSchema is the ordered field sequence of one record type.
type RecordSchema struct {
	Name   string
	Fields []Field
}

// Record holds the trimmed field values of one matched record, keyed by Field.Key.
type Record map[string]string

// Value returns the trimmed value for key.
func (r Record) Value(key string) string {
	return r[key]
}

// List returns the value for key split on commas.
func (r Record) List(key string) []string {
	return SplitList(r[key])
}

// Record schemas of the template, in field order.
var (
	PersonalDetailsSchema = RecordSchema{
		Name: "personal_details",
		Fields: []Field{
			{Key: "name", Labels: []string{"Name"}},
			{Key: "phone_numbers", Labels: []string{"Phone"}},
			{Key: "emails", Labels: []string{"Email"}},
			{Key: "address", Labels: []string{"Address"}},
			{Key: "date_of_birth", Labels: []string{"Date of Birth"}},
			{Key: "languages", Labels: []string{"Languages"}},
			{Key: "gender", Labels: []string{"Gender"}},
			{Key: "marital_status", Labels: []string{"Marital Status"}},
		},
	}

	EducationSchema = RecordSchema{
		Name: "education",
		Fields: []Field{
			{Key: "degree", Labels: []string{"Degree"}},
			{Key: "institution", Labels: []string{"Institution"}},
			{Key: "year", Labels: []string{"Year"}},
			{Key: "cgpa_or_percentage", Labels: []string{"CGPA", "Percentage"}},
		},
	}

	ExperienceSchema = RecordSchema{
		Name: "experience",
		Fields: []Field{
			{Key: "title", Labels: []string{"Title"}},
			{Key: "company", Labels: []string{"Company"}},
			{Key: "duration", Labels: []string{"Duration"}},
			{Key: "key_skills", Labels: []string{"Key Skills"}},
			{Key: "description", Labels: []string{"Description"}},
		},
	}

	ProjectSchema = RecordSchema{
		Name: "projects",
		Fields: []Field{
			{Key: "title", Labels: []string{"Title"}},
			{Key: "team_size", Labels: []string{"Team Size"}},
			{Key: "duration", Labels: []string{"Duration"}},
			{Key: "key_skills", Labels: []string{"Key Skills"}},
			{Key: "project_link", Labels: []string{"Project Link"}},
			{Key: "description", Labels: []string{"Description"}},
		},
	}

	CertificationSchema = RecordSchema{
		Name: "certifications",
		Fields: []Field{
			{Key: "title", Labels: []string{"Title"}},
			{Key: "key_skills", Labels: []string{"Key Skills"}},
		},
	}
)

// labelPattern matches any of the labels; inner spaces match runs of blanks.
func labelPattern(labels []string) string {
	alts := make([]string, len(labels))
	for i, label := range labels {
		words := strings.Fields(label)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts[i] = strings.Join(words, `[ \t]+`)
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

// Pattern compiles the schema into a line-anchored pattern with one capture group
// per field. Each field occupies exactly one line; the last field may end at the
// end of the text.
func (s RecordSchema) Pattern() *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`(?m)^`)
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(`\n`)
		}
		sb.WriteString(`[ \t]*`)
		sb.WriteString(labelPattern(f.Labels))
		sb.WriteString(`[ \t]*:[ \t]*(.*)`)
	}
	sb.WriteString(`$`)
	return regexp.MustCompile(sb.String())
}

// recordMatcher pairs a schema with its compiled pattern.
type recordMatcher struct {
	schema RecordSchema
	re     *regexp.Regexp
}

func newRecordMatcher(s RecordSchema) recordMatcher {
	return recordMatcher{schema: s, re: s.Pattern()}
}

func (m recordMatcher) toRecord(groups []string) Record {
	rec := make(Record, len(m.schema.Fields))
	for i, f := range m.schema.Fields {
		rec[f.Key] = strings.TrimSpace(groups[i+1])
	}
	return rec
}

// all returns every non-overlapping record in text, in source order.
func (m recordMatcher) all(text string) []Record {
	matches := m.re.FindAllStringSubmatch(text, -1)
	records := make([]Record, 0, len(matches))
	for _, groups := range matches {
		records = append(records, m.toRecord(groups))
	}
	return records
}

// first returns the first record in text.
func (m recordMatcher) first(text string) (Record, bool) {
	groups := m.re.FindStringSubmatch(text)
	if groups == nil {
		return nil, false
	}
	return m.toRecord(groups), true
}

// ExtractRecords finds every record of schema in sectionText, in source order.
func ExtractRecords(sectionText string, schema RecordSchema) []Record {
	return newRecordMatcher(schema).all(strings.TrimSpace(NormalizeText(sectionText)))
}
