// Package types provides type definitions for the structured resume produced by the converter.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the structured result of parsing one document.
// A nil section means the section was not found in the source text; a non-nil
// pointer to an empty slice means the section was found but held no records.
type Resume struct {
	PersonalDetails *PersonalDetails      `json:"personal_details,omitempty"`
	Education       *[]EducationEntry     `json:"education,omitempty"`
	Skills          *[]string             `json:"skills,omitempty"`
	Experience      *[]ExperienceEntry    `json:"experience,omitempty"`
	Projects        *[]ProjectEntry       `json:"projects,omitempty"`
	Certifications  *[]CertificationEntry `json:"certifications,omitempty"`
}

// PersonalDetails is the single labeled block at the top of the resume
type PersonalDetails struct {
	Name          string   `json:"name"`
	PhoneNumbers  []string `json:"phone_numbers"`
	Emails        []string `json:"emails"`
	Address       string   `json:"address"`
	DateOfBirth   string   `json:"date_of_birth"`
	Languages     []string `json:"languages"`
	Gender        string   `json:"gender"`
	MaritalStatus string   `json:"marital_status"`
}

// EducationEntry represents one degree
type EducationEntry struct {
	Degree           string `json:"degree"`
	Institution      string `json:"institution"`
	Year             string `json:"year"`
	CGPAOrPercentage string `json:"cgpa_or_percentage"`
}

// ExperienceEntry represents one job
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	KeySkills   []string `json:"key_skills"`
	Description string   `json:"description"`
}

// ProjectEntry represents one project
type ProjectEntry struct {
	Title       string   `json:"title"`
	TeamSize    string   `json:"team_size"`
	Duration    string   `json:"duration"`
	KeySkills   []string `json:"key_skills"`
	ProjectLink string   `json:"project_link"`
	Description string   `json:"description"`
}

// CertificationEntry represents one certification
type CertificationEntry struct {
	Title     string   `json:"title"`
	KeySkills []string `json:"key_skills"`
}

// SectionNames returns the JSON keys of the sections present in r, in output order.
func (r *Resume) SectionNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	if r.PersonalDetails != nil {
		names = append(names, "personal_details")
	}
	if r.Education != nil {
		names = append(names, "education")
	}
	if r.Skills != nil {
		names = append(names, "skills")
	}
	if r.Experience != nil {
		names = append(names, "experience")
	}
	if r.Projects != nil {
		names = append(names, "projects")
	}
	if r.Certifications != nil {
		names = append(names, "certifications")
	}
	return names
}
