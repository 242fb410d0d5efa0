package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

// Resolver turns persisted references into readable files.
type Resolver interface {
	// Resolve parses raw and resolves it. Failures wrap ErrNotFound.
	Resolve(ctx context.Context, raw string) (m.ResolvedFile, error)
	// ResolveReference resolves an already parsed reference.
	ResolveReference(ctx context.Context, ref m.Reference) (m.ResolvedFile, error)
}

// ResolverConfig lists the file extensions the resolver treats as source
// text and as compiled artifacts.
type ResolverConfig struct {
	SourceExtensions   []string
	CompiledExtensions []string
}

type resolver struct {
	index  adapter.CandidateIndex
	ranker Ranker
	cfg    ResolverConfig
}

// NewResolver creates a Resolver backed by index.
func NewResolver(index adapter.CandidateIndex, ranker Ranker, cfg ResolverConfig) Resolver {
	if ranker == nil {
		ranker = NewMarkerRanker()
	}

	return &resolver{index: index, ranker: ranker, cfg: cfg}
}

func (r *resolver) Resolve(ctx context.Context, raw string) (m.ResolvedFile, error) {
	return r.resolve(ctx, raw, m.ParseReference(raw))
}

func (r *resolver) ResolveReference(ctx context.Context, ref m.Reference) (m.ResolvedFile, error) {
	return r.resolve(ctx, ref.Encode(), ref)
}

func (r *resolver) resolve(ctx context.Context, raw string, ref m.Reference) (m.ResolvedFile, error) {
	if err := ctx.Err(); err != nil {
		return m.ResolvedFile{}, &ResolveError{Reference: raw, Err: err}
	}

	var (
		h   m.FileHandle
		err error
	)

	switch ref.Kind {
	case m.KindSymbolicClass:
		h, err = r.resolveClass(ctx, ref)
	case m.KindArchiveEntry:
		h, err = r.resolveArchiveEntry(ctx, ref)
	default:
		h, err = r.resolvePath(ctx, ref.Path)
	}

	if err != nil {
		slog.Debug("Reference not resolved", "reference", raw, "error", err)

		var ioErr *ioError
		if errors.As(err, &ioErr) {
			return m.ResolvedFile{}, ioFailureError(raw, err)
		}

		return m.ResolvedFile{}, notFoundError(raw)
	}

	content, err := r.index.ReadText(ctx, h)
	if err != nil {
		slog.Warn("Failed to read resolved file", "reference", raw, "file", h.Identity, "error", err)
		return m.ResolvedFile{}, ioFailureError(raw, err)
	}

	return m.ResolvedFile{
		DisplayName: h.Identity,
		Identity:    h.Identity,
		Content:     content,
		Reference:   raw,
	}, nil
}

func (r *resolver) resolvePath(ctx context.Context, path string) (m.FileHandle, error) {
	if h, ok := r.index.Lookup(ctx, path); ok {
		return r.preferSource(ctx, h), nil
	}

	return r.searchByName(ctx, m.PlainPathRef(path).BaseName())
}

func (r *resolver) resolveArchiveEntry(ctx context.Context, ref m.Reference) (m.FileHandle, error) {
	h, err := r.index.OpenArchiveEntry(ctx, ref.Archive, ref.Inner)
	if err == nil {
		return r.preferSource(ctx, h), nil
	}

	slog.Warn("Failed to open archive entry, searching by name", "archive", ref.Archive, "entry", ref.Inner, "error", err)

	found, searchErr := r.searchByName(ctx, ref.BaseName())
	if searchErr != nil {
		return m.FileHandle{}, &ioError{err: err}
	}

	return found, nil
}

// resolveClass prefers a source file in the exact namespace, then any file
// with the class name, then a namespace-qualified lookup.
func (r *resolver) resolveClass(ctx context.Context, ref m.Reference) (m.FileHandle, error) {
	var exact, named []m.FileHandle

	for _, ext := range r.cfg.SourceExtensions {
		found, err := r.index.FindByName(ctx, ref.SimpleName+ext)
		if err != nil {
			return m.FileHandle{}, &ioError{err: err}
		}

		for _, h := range found {
			named = append(named, h)

			ns, err := r.index.ReadNamespace(ctx, h)
			if err != nil {
				slog.Debug("Failed to read namespace", "file", h.Identity, "error", err)
				continue
			}

			if ns == ref.Namespace {
				exact = append(exact, h)
			}
		}
	}

	if h, ok := bestCandidate(r.ranker, exact); ok {
		return h, nil
	}

	if h, ok := bestCandidate(r.ranker, named); ok {
		return h, nil
	}

	for _, ext := range r.cfg.SourceExtensions {
		if h, ok := r.index.LookupQualified(ctx, ref.Namespace, ref.SimpleName+ext); ok {
			return h, nil
		}
	}

	for _, ext := range r.cfg.CompiledExtensions {
		if h, ok := r.index.LookupQualified(ctx, ref.Namespace, ref.SimpleName+ext); ok {
			return r.substitute(ctx, h), nil
		}
	}

	return m.FileHandle{}, ErrNotFound
}

// searchByName finds the best file called name. A compiled name such as
// Foo.class first looks for Foo with each source extension.
func (r *resolver) searchByName(ctx context.Context, name string) (m.FileHandle, error) {
	names := []string{name}

	if hasExtension(name, r.cfg.CompiledExtensions) {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		names = names[:0]

		for _, ext := range r.cfg.SourceExtensions {
			names = append(names, stem+ext)
		}

		names = append(names, name)
	}

	for _, n := range names {
		found, err := r.index.FindByName(ctx, n)
		if err != nil {
			return m.FileHandle{}, &ioError{err: err}
		}

		if h, ok := bestCandidate(r.ranker, found); ok {
			return r.preferSource(ctx, h), nil
		}
	}

	return m.FileHandle{}, ErrNotFound
}

// preferSource swaps compiled files for their source and follows the
// navigation target of anything else.
func (r *resolver) preferSource(ctx context.Context, h m.FileHandle) m.FileHandle {
	if r.index.IsCompiledArtifact(h) {
		return r.substitute(ctx, h)
	}

	if target, ok := r.index.NavigationTarget(ctx, h); ok {
		return target
	}

	return h
}

// substitute picks the best source file for a compiled artifact, or returns
// the artifact itself when no source exists.
func (r *resolver) substitute(ctx context.Context, compiled m.FileHandle) m.FileHandle {
	var candidates []m.FileHandle

	if target, ok := r.index.NavigationTarget(ctx, compiled); ok {
		candidates = append(candidates, target)
	}

	stem := classStem(compiled.Name)

	var named []m.FileHandle
	for _, ext := range r.cfg.SourceExtensions {
		found, err := r.index.FindByName(ctx, stem+ext)
		if err != nil {
			slog.Warn("Failed to search source candidates", "name", stem+ext, "error", err)
			continue
		}

		named = append(named, found...)
	}

	if compiled.HasNamespace {
		named = r.filterNamespace(ctx, compiled, named)
	}

	candidates = append(candidates, named...)

	if h, ok := bestCandidate(r.ranker, candidates); ok {
		slog.Debug("Substituted source for compiled file", "compiled", compiled.Identity, "source", h.Identity)
		return h
	}

	return compiled
}

// filterNamespace keeps the candidates declared in the compiled file's
// namespace. When none match, all candidates are kept.
func (r *resolver) filterNamespace(ctx context.Context, compiled m.FileHandle, candidates []m.FileHandle) []m.FileHandle {
	ns, err := r.index.ReadNamespace(ctx, compiled)
	if err != nil {
		slog.Debug("Failed to read namespace of compiled file", "file", compiled.Identity, "error", err)
		return candidates
	}

	var filtered []m.FileHandle
	for _, c := range candidates {
		cns, err := r.index.ReadNamespace(ctx, c)
		if err == nil && cns == ns {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == 0 {
		return candidates
	}

	return filtered
}

// ioError marks resolution failures caused by unreadable storage.
type ioError struct {
	err error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("io failure: %v", e.err)
}

func (e *ioError) Unwrap() error {
	return e.err
}

func classStem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.Index(stem, "$"); i > 0 {
		stem = stem[:i]
	}

	return stem
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}

	return false
}
