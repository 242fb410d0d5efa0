package model

// Path represents a file system path.
type Path string

// FileHandle identifies one file known to a candidate index. Compiled and
// HasNamespace are fixed when the index is built, so callers never have to
// inspect file contents to learn what kind of file they hold.
type FileHandle struct {
	// Identity is the unique key: an absolute path, or archive!/inner for
	// archive entries.
	Identity string
	// Name is the simple file name (e.g. "Bar.java").
	Name string
	// StoragePath is the provenance path used for ranking. For archive
	// entries it is the full archive!/inner path.
	StoragePath string
	// Archive and Inner are set for archive entries only.
	Archive string
	Inner   string
	// Compiled marks binary artifacts such as .class files.
	Compiled bool
	// HasNamespace marks files that carry a namespace/package declaration.
	HasNamespace bool
}

// InArchive reports whether the handle points inside an archive.
func (h FileHandle) InArchive() bool {
	return h.Archive != ""
}

// IsZero reports whether h is the empty handle.
func (h FileHandle) IsZero() bool {
	return h.Identity == ""
}

// ResolvedFile is a reference turned into readable content.
// Two resolved files are the same entry iff their Identity values match.
type ResolvedFile struct {
	DisplayName string
	Identity    string
	Content     string
	// Reference is the persisted string the file was resolved from.
	Reference string
}

// Same reports whether both values denote the same selection entry.
func (f ResolvedFile) Same(other ResolvedFile) bool {
	return f.Identity == other.Identity
}

// PanelID names one of the two selection panels.
type PanelID string

const (
	// ProjectPanel holds files from the project itself.
	ProjectPanel PanelID = "project_files"
	// AdditionalPanel holds extra context from anywhere.
	AdditionalPanel PanelID = "additional_files"
)

// Panels lists the panels in display order.
var Panels = []PanelID{ProjectPanel, AdditionalPanel}

// Label returns a short human-readable panel name.
func (p PanelID) Label() string {
	switch p {
	case ProjectPanel:
		return "project"
	case AdditionalPanel:
		return "additional"
	default:
		return string(p)
	}
}
