// Package parsing converts extracted resume text into a structured Resume by
// matching the fixed "Label: value" template section by section.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-convert/internal/types"
	"github.com/rs/zerolog"
)

// Parser locates template sections in text. A Parser is immutable after
// construction and safe for concurrent use.
type Parser struct {
	order      []string
	boundaries map[string]*regexp.Regexp
	personal   recordMatcher
	education  recordMatcher
	experience recordMatcher
	projects   recordMatcher
	certs      recordMatcher
	logger     zerolog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithSectionOrder replaces the ordered list of recognized section headers.
func WithSectionOrder(order []string) Option {
	return func(p *Parser) {
		p.order = append([]string(nil), order...)
	}
}

// WithLogger sets the logger used for per-section debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser builds a Parser. The section order must be non-empty and free of
// blank or duplicate headers.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		order:  append([]string(nil), DefaultSectionOrder...),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if len(p.order) == 0 {
		return nil, &ConfigError{Message: "section order is empty"}
	}
	seen := make(map[string]bool, len(p.order))
	for _, header := range p.order {
		if strings.TrimSpace(header) == "" {
			return nil, &ConfigError{Message: "section header is blank"}
		}
		if seen[header] {
			return nil, &ConfigError{Message: "section header is listed twice", Header: header}
		}
		seen[header] = true
	}

	p.boundaries = compileBoundaries(p.order)
	p.personal = newRecordMatcher(PersonalDetailsSchema)
	p.education = newRecordMatcher(EducationSchema)
	p.experience = newRecordMatcher(ExperienceSchema)
	p.projects = newRecordMatcher(ProjectSchema)
	p.certs = newRecordMatcher(CertificationSchema)
	return p, nil
}

var defaultParser = mustDefaultParser()

func mustDefaultParser() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	return p
}

// Default returns the shared Parser using DefaultSectionOrder.
func Default() *Parser {
	return defaultParser
}

// Parse converts text into a Resume using the default section order.
// It never fails: sections that cannot be located are left nil.
func Parse(text string) *types.Resume {
	return defaultParser.Parse(text)
}

// ParseWithReport is Parse plus a report of which sections were recognized.
func ParseWithReport(text string) (*types.Resume, *Report) {
	return defaultParser.ParseWithReport(text)
}

// FindSection returns the trimmed body of header using the default section order.
func FindSection(text, header string) (string, bool) {
	return defaultParser.FindSection(text, header)
}

// Order returns a copy of the parser's section order.
func (p *Parser) Order() []string {
	return append([]string(nil), p.order...)
}

// FindSection returns the trimmed body of header, bounded by the next header
// that follows it in the section order or by the end of the text.
func (p *Parser) FindSection(text, header string) (string, bool) {
	body, ok := findSection(p.boundaries, NormalizeText(text), header)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(body), true
}

// Parse converts text into a Resume.
func (p *Parser) Parse(text string) *types.Resume {
	resume, _ := p.ParseWithReport(text)
	return resume
}

// ParseWithReport converts text into a Resume and reports, per section, whether it
// was found and how many records it yielded.
func (p *Parser) ParseWithReport(text string) (*types.Resume, *Report) {
	text = NormalizeText(text)
	resume := &types.Resume{}
	report := &Report{}

	if rec, ok := p.personal.first(text); ok {
		resume.PersonalDetails = personalDetailsFromRecord(rec)
		report.add(PersonalDetailsSchema.Name, true, 1)
	} else {
		report.add(PersonalDetailsSchema.Name, false, 0)
	}

	resume.Education = extractSection(p, text, HeaderEducation, p.education, educationFromRecord, report)

	if body, ok := p.FindSection(text, HeaderSkills); ok {
		skills := splitLines(body)
		resume.Skills = &skills
		report.add("skills", true, len(skills))
	} else {
		report.add("skills", false, 0)
	}

	resume.Experience = extractSection(p, text, HeaderExperience, p.experience, experienceFromRecord, report)
	resume.Projects = extractSection(p, text, HeaderProjects, p.projects, projectFromRecord, report)
	resume.Certifications = extractSection(p, text, HeaderCertifications, p.certs, certificationFromRecord, report)

	for _, s := range report.Sections {
		p.logger.Debug().Str("section", s.Name).Bool("found", s.Found).Int("records", s.Records).Msg("parsed section")
	}
	return resume, report
}

// extractSection isolates header's body and converts every record in it with build.
// It returns nil when the section is absent.
func extractSection[T any](p *Parser, text, header string, m recordMatcher, build func(Record) T, report *Report) *[]T {
	body, ok := p.FindSection(text, header)
	if !ok {
		report.add(m.schema.Name, false, 0)
		return nil
	}
	records := m.all(body)
	entries := make([]T, 0, len(records))
	for _, rec := range records {
		entries = append(entries, build(rec))
	}
	report.add(m.schema.Name, true, len(entries))
	return &entries
}

func personalDetailsFromRecord(r Record) *types.PersonalDetails {
	return &types.PersonalDetails{
		Name:          r.Value("name"),
		PhoneNumbers:  r.List("phone_numbers"),
		Emails:        r.List("emails"),
		Address:       r.Value("address"),
		DateOfBirth:   r.Value("date_of_birth"),
		Languages:     r.List("languages"),
		Gender:        r.Value("gender"),
		MaritalStatus: r.Value("marital_status"),
	}
}

func educationFromRecord(r Record) types.EducationEntry {
	return types.EducationEntry{
		Degree:           r.Value("degree"),
		Institution:      r.Value("institution"),
		Year:             r.Value("year"),
		CGPAOrPercentage: r.Value("cgpa_or_percentage"),
	}
}

func experienceFromRecord(r Record) types.ExperienceEntry {
	return types.ExperienceEntry{
		Title:       r.Value("title"),
		Company:     r.Value("company"),
		Duration:    r.Value("duration"),
		KeySkills:   r.List("key_skills"),
		Description: r.Value("description"),
	}
}

func projectFromRecord(r Record) types.ProjectEntry {
	return types.ProjectEntry{
		Title:       r.Value("title"),
		TeamSize:    r.Value("team_size"),
		Duration:    r.Value("duration"),
		KeySkills:   r.List("key_skills"),
		ProjectLink: r.Value("project_link"),
		Description: r.Value("description"),
	}
}

func certificationFromRecord(r Record) types.CertificationEntry {
	return types.CertificationEntry{
		Title:     r.Value("title"),
		KeySkills: r.List("key_skills"),
	}
}
