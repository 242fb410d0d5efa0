package domain

import (
	"strings"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

const fileDelimiter = "------------------"

// SelectionSet is an insertion-ordered set of resolved files, unique by
// identity. It is not safe for concurrent use; a Panel owns exactly one.
type SelectionSet struct {
	entries []m.ResolvedFile
	index   map[string]int
}

// NewSelectionSet returns an empty set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{index: make(map[string]int)}
}

// Add appends f unless an entry with the same identity exists. It reports
// whether f was added.
func (s *SelectionSet) Add(f m.ResolvedFile) bool {
	if _, ok := s.index[f.Identity]; ok {
		return false
	}

	s.index[f.Identity] = len(s.entries)
	s.entries = append(s.entries, f)

	return true
}

// Remove deletes the entry with identity, keeping the order of the rest.
func (s *SelectionSet) Remove(identity string) bool {
	pos, ok := s.index[identity]
	if !ok {
		return false
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)

	delete(s.index, identity)

	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].Identity] = i
	}

	return true
}

// Contains reports whether an entry with identity exists.
func (s *SelectionSet) Contains(identity string) bool {
	_, ok := s.index[identity]
	return ok
}

// Entries returns a copy of the entries in insertion order.
func (s *SelectionSet) Entries() []m.ResolvedFile {
	return append([]m.ResolvedFile(nil), s.entries...)
}

// Len returns the number of entries.
func (s *SelectionSet) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the set has no entries.
func (s *SelectionSet) IsEmpty() bool {
	return len(s.entries) == 0
}

// Clear removes every entry.
func (s *SelectionSet) Clear() {
	s.entries = nil
	s.index = make(map[string]int)
}

// ToOrderedReferences returns the persisted reference of every entry in order.
func (s *SelectionSet) ToOrderedReferences() []string {
	refs := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		refs = append(refs, e.Reference)
	}

	return refs
}

// FormattedContent renders every entry under a delimited "File:" header.
func (s *SelectionSet) FormattedContent() string {
	var sb strings.Builder

	for _, e := range s.entries {
		sb.WriteString(fileDelimiter + "\n")
		sb.WriteString("File: " + e.DisplayName + "\n")
		sb.WriteString(fileDelimiter + "\n\n")
		sb.WriteString(e.Content + "\n\n")
	}

	return sb.String()
}
