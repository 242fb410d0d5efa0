package model

// Template is a named snapshot of the prompt configuration.
type Template struct {
	Name           string   `yaml:"name"`
	HeadText       string   `yaml:"head"`
	SectionHeaderA string   `yaml:"project_header"`
	SectionHeaderB string   `yaml:"additional_header"`
	ReferencesA    []string `yaml:"project_files"`
	ReferencesB    []string `yaml:"additional_files"`
}

// Clone returns a deep copy so callers can't alias the reference lists.
func (t Template) Clone() Template {
	c := t
	c.ReferencesA = append([]string(nil), t.ReferencesA...)
	c.ReferencesB = append([]string(nil), t.ReferencesB...)

	return c
}

// References returns the reference list stored for panel.
func (t Template) References(panel PanelID) []string {
	if panel == AdditionalPanel {
		return t.ReferencesB
	}

	return t.ReferencesA
}
