package domain

import "strings"

const (
	// DefaultEmptyProject is printed in place of an empty project section.
	DefaultEmptyProject = "No project files selected."
	// DefaultEmptyAdditional is printed in place of an empty additional section.
	DefaultEmptyAdditional = "No additional files selected."
)

// Assembler renders the final prompt text.
type Assembler struct {
	EmptyA string
	EmptyB string
}

// NewAssembler returns an Assembler with the given placeholders. Empty
// values fall back to the defaults.
func NewAssembler(emptyA, emptyB string) Assembler {
	if emptyA == "" {
		emptyA = DefaultEmptyProject
	}

	if emptyB == "" {
		emptyB = DefaultEmptyAdditional
	}

	return Assembler{EmptyA: emptyA, EmptyB: emptyB}
}

// Assemble lays out head, then each labelled section.
func (a Assembler) Assemble(head, labelA string, setA *SelectionSet, labelB string, setB *SelectionSet) string {
	var sb strings.Builder

	sb.WriteString(head + "\n\n")
	writeSection(&sb, labelA, setA, a.EmptyA)
	writeSection(&sb, labelB, setB, a.EmptyB)

	return sb.String()
}

func writeSection(sb *strings.Builder, label string, set *SelectionSet, empty string) {
	sb.WriteString(label + "\n\n")

	if set == nil || set.IsEmpty() {
		sb.WriteString(empty + "\n\n")
		return
	}

	sb.WriteString(set.FormattedContent())
}
