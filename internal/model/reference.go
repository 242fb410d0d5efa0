// Package model defines the data structures shared by the prompt generator.
package model

import "strings"

// ReferenceKind tags the variant held by a Reference.
type ReferenceKind int

const (
	// KindPlainPath is a filesystem path.
	KindPlainPath ReferenceKind = iota
	// KindArchiveEntry is an entry inside an archive (e.g. a jar).
	KindArchiveEntry
	// KindSymbolicClass is a dotted class name with no fixed file location.
	KindSymbolicClass
)

const (
	// ClasspathPrefix marks a symbolic class reference.
	ClasspathPrefix = "classpath:"
	// ArchiveSeparator splits an archive path from the entry path inside it.
	ArchiveSeparator = "!/"
)

func (k ReferenceKind) String() string {
	switch k {
	case KindPlainPath:
		return "path"
	case KindArchiveEntry:
		return "archive"
	case KindSymbolicClass:
		return "class"
	default:
		return "unknown"
	}
}

// Reference is the parsed form of a persisted file identifier.
//
// Only the fields belonging to Kind are meaningful:
//   - KindPlainPath: Path
//   - KindArchiveEntry: Archive, Inner
//   - KindSymbolicClass: Namespace, SimpleName
type Reference struct {
	Kind       ReferenceKind
	Path       string
	Archive    string
	Inner      string
	Namespace  string
	SimpleName string
}

// PlainPathRef builds a plain path reference.
func PlainPathRef(path string) Reference {
	return Reference{Kind: KindPlainPath, Path: path}
}

// ArchiveEntryRef builds a reference to an entry inside an archive.
func ArchiveEntryRef(archive, inner string) Reference {
	return Reference{Kind: KindArchiveEntry, Archive: archive, Inner: inner}
}

// SymbolicClassRef builds a class reference from a dotted qualified name.
// The namespace is everything before the last dot; a name without dots has
// an empty namespace.
func SymbolicClassRef(qualifiedName string) Reference {
	ref := Reference{Kind: KindSymbolicClass, SimpleName: qualifiedName}
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		ref.Namespace = qualifiedName[:i]
		ref.SimpleName = qualifiedName[i+1:]
	}

	return ref
}

// ParseReference turns a persisted identifier into a Reference. It never
// fails: anything that is not a well-formed class or archive reference is
// returned as a plain path holding raw unchanged.
func ParseReference(raw string) Reference {
	if strings.HasPrefix(raw, ClasspathPrefix) {
		qualified := strings.TrimPrefix(raw, ClasspathPrefix)
		ref := SymbolicClassRef(qualified)
		if ref.SimpleName != "" && !strings.HasPrefix(qualified, ".") {
			return ref
		}

		return PlainPathRef(raw)
	}

	if archive, inner, ok := strings.Cut(raw, ArchiveSeparator); ok {
		if archive != "" && inner != "" {
			return ArchiveEntryRef(archive, inner)
		}
	}

	return PlainPathRef(raw)
}

// QualifiedName returns namespace.SimpleName for class references.
func (r Reference) QualifiedName() string {
	if r.Namespace == "" {
		return r.SimpleName
	}

	return r.Namespace + "." + r.SimpleName
}

// Encode returns the canonical persisted form of the reference.
func (r Reference) Encode() string {
	switch r.Kind {
	case KindSymbolicClass:
		return ClasspathPrefix + r.QualifiedName()
	case KindArchiveEntry:
		return r.Archive + ArchiveSeparator + r.Inner
	default:
		return r.Path
	}
}

// BaseName returns the simple file name the reference points at, or the
// class name for symbolic references.
func (r Reference) BaseName() string {
	switch r.Kind {
	case KindSymbolicClass:
		return r.SimpleName
	case KindArchiveEntry:
		return baseName(r.Inner)
	default:
		return baseName(r.Path)
	}
}

func (r Reference) String() string {
	return r.Encode()
}

// baseName handles both separators since persisted paths may come from
// another platform.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}
