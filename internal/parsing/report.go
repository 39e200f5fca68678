package parsing

// SectionReport describes the outcome for one section.
type SectionReport struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Records int    `json:"records"`
}

// Report lists every section the parser attempted, in output order.
type Report struct {
	Sections []SectionReport `json:"sections"`
}

func (r *Report) add(name string, found bool, records int) {
	r.Sections = append(r.Sections, SectionReport{Name: name, Found: found, Records: records})
}

// Recognized returns the names of the sections that were found.
func (r *Report) Recognized() []string {
	var names []string
	for _, s := range r.Sections {
		if s.Found {
			names = append(names, s.Name)
		}
	}
	return names
}

// Missing returns the names of the sections that were attempted but not found.
func (r *Report) Missing() []string {
	var names []string
	for _, s := range r.Sections {
		if !s.Found {
			names = append(names, s.Name)
		}
	}
	return names
}
