package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single value", "Go", []string{"Go"}},
		{"trims elements", " Go ,  Rust,Python ", []string{"Go", "Rust", "Python"}},
		{"keeps empty middle element", "a,,b", []string{"a", "", "b"}},
		{"keeps trailing empty element", "a, b,", []string{"a", "b", ""}},
		{"empty input", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestExtractRecords_AlternativeLabels(t *testing.T) {
	text := "Degree : BA\nInstitution : X\nYear : 2001\nCGPA : 3.1\n" +
		"Degree : MA\nInstitution : Y\nYear : 2003\nPercentage : 71\n"

	records := ExtractRecords(text, EducationSchema)

	require.Len(t, records, 2)
	assert.Equal(t, "3.1", records[0].Value("cgpa_or_percentage"))
	assert.Equal(t, "71", records[1].Value("cgpa_or_percentage"))
}

func TestExtractRecords_LastRecordWithoutTrailingNewline(t *testing.T) {
	text := "Title : CKA\nKey Skills : Kubernetes"

	records := ExtractRecords(text, CertificationSchema)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"Kubernetes"}, records[0].List("key_skills"))
}

func TestExtractRecords_IndentationAndSpacing(t *testing.T) {
	text := "  Title:Lead\n\tKey   Skills  :   Go,  Rust  \n"

	records := ExtractRecords(text, CertificationSchema)

	require.Len(t, records, 1)
	assert.Equal(t, "Lead", records[0].Value("title"))
	assert.Equal(t, []string{"Go", "Rust"}, records[0].List("key_skills"))
}

func TestExtractRecords_FieldsOutOfOrderDoNotMatch(t *testing.T) {
	text := "Key Skills : Go\nTitle : Lead\n"

	records := ExtractRecords(text, CertificationSchema)

	assert.Empty(t, records)
}

func TestExtractRecords_LabelMustStartLine(t *testing.T) {
	text := "Job Title : Lead\nKey Skills : Go\n"

	records := ExtractRecords(text, CertificationSchema)

	assert.Empty(t, records)
}

func TestExtractRecords_BlankLineBreaksRecord(t *testing.T) {
	text := "Title : Lead\n\nKey Skills : Go\n"

	records := ExtractRecords(text, CertificationSchema)

	assert.Empty(t, records)
}

func TestFindSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		header   string
		wantBody string
		wantOK   bool
	}{
		{"bounded by next header", "Skills\nGo\nRust\nExperience\nx", HeaderSkills, "Go\nRust", true},
		{"bounded by later header", "Skills\nGo\nAwards\nx", HeaderSkills, "Go", true},
		{"runs to end of text", "Certifications\nTitle : A\nKey Skills : B", HeaderCertifications, "Title : A\nKey Skills : B", true},
		{"header needs newline", "Skills: Go, Rust", HeaderSkills, "", false},
		{"earlier header is not a boundary", "Skills\nGo\nEducation\nRust", HeaderSkills, "Go\nEducation\nRust", true},
		{"unknown header", "Hobbies\nChess", "Hobbies", "", false},
		{"missing section", "Education\nDegree : BA", HeaderSkills, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ok := FindSection(tt.text, tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRecordSchema_Pattern(t *testing.T) {
	for _, schema := range []RecordSchema{
		PersonalDetailsSchema, EducationSchema, ExperienceSchema, ProjectSchema, CertificationSchema,
	} {
		t.Run(schema.Name, func(t *testing.T) {
			re := schema.Pattern()
			assert.Equal(t, len(schema.Fields), re.NumSubexp())
		})
	}
}
