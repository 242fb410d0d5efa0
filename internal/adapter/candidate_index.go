package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// CandidateIndex is the read-only view of every file the resolver may pick
// from: project sources, library roots and the entries of their archives.
type CandidateIndex interface {
	// FindByName returns every indexed file whose simple name equals name,
	// in discovery order.
	FindByName(ctx context.Context, name string) ([]m.FileHandle, error)

	// Lookup finds a file by absolute path or archive identity. Regular files
	// outside the indexed roots are still returned when they exist on disk.
	Lookup(ctx context.Context, path string) (m.FileHandle, bool)

	// LookupQualified finds a file whose location ends with the namespace
	// rendered as directories followed by fileName.
	LookupQualified(ctx context.Context, namespace, fileName string) (m.FileHandle, bool)

	// OpenArchiveEntry returns a handle for inner inside archive.
	OpenArchiveEntry(ctx context.Context, archive, inner string) (m.FileHandle, error)

	// ReadText returns the textual content of a file.
	ReadText(ctx context.Context, h m.FileHandle) (string, error)

	// ReadNamespace returns the declared namespace of a file, or "" when it
	// has none.
	ReadNamespace(ctx context.Context, h m.FileHandle) (string, error)

	// IsCompiledArtifact reports whether h is a compiled binary.
	IsCompiledArtifact(h m.FileHandle) bool

	// NavigationTarget returns the source counterpart of a compiled file.
	NavigationTarget(ctx context.Context, h m.FileHandle) (m.FileHandle, bool)
}

// IndexConfig controls what LocalCandidateIndex scans.
type IndexConfig struct {
	ProjectRoot        string
	Roots              []string
	SourceExtensions   []string
	CompiledExtensions []string
	ArchiveExtensions  []string
	CacheSize          int
}

// DefaultIndexConfig returns the extension sets used when nothing is configured.
func DefaultIndexConfig(projectRoot string) IndexConfig {
	return IndexConfig{
		ProjectRoot:        projectRoot,
		SourceExtensions:   []string{".java", ".kt", ".scala", ".groovy", ".go"},
		CompiledExtensions: []string{".class"},
		ArchiveExtensions:  []string{".jar", ".zip"},
		CacheSize:          256,
	}
}

const namespaceSniffLines = 64

var packageDecl = regexp.MustCompile(`^\s*package\s+([A-Za-z_][\w.]*)\s*;?`)

// LocalCandidateIndex is a CandidateIndex over the local filesystem. The
// index is built on first use and never refreshed.
type LocalCandidateIndex struct {
	cfg      IndexConfig
	fs       SourceFSAdapter
	archives *ArchiveReader
	texts    *lru.Cache[string, string]

	once     sync.Once
	buildErr error

	handles    []m.FileHandle
	byIdentity map[string]int
	byName     map[string][]int

	nsMu       sync.Mutex
	namespaces map[string]string
}

// NewLocalCandidateIndex creates an index over cfg's project root and library roots.
func NewLocalCandidateIndex(cfg IndexConfig, fs SourceFSAdapter) (*LocalCandidateIndex, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}

	texts, err := lru.New[string, string](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create text cache: %w", err)
	}

	archives, err := NewArchiveReader(defaultArchiveCacheSize)
	if err != nil {
		return nil, err
	}

	return &LocalCandidateIndex{
		cfg:        cfg,
		fs:         fs,
		archives:   archives,
		texts:      texts,
		byIdentity: make(map[string]int),
		byName:     make(map[string][]int),
		namespaces: make(map[string]string),
	}, nil
}

// Close releases cached archive readers.
func (idx *LocalCandidateIndex) Close() error {
	return idx.archives.Close()
}

// Build scans every root. It runs once; later calls return the first result.
// The scan is detached from the caller's cancellation.
func (idx *LocalCandidateIndex) Build(ctx context.Context) error {
	idx.once.Do(func() {
		idx.buildErr = idx.build(context.WithoutCancel(ctx))
	})

	return idx.buildErr
}

func (idx *LocalCandidateIndex) build(ctx context.Context) error {
	roots := make([]string, 0, len(idx.cfg.Roots)+1)
	if idx.cfg.ProjectRoot != "" {
		roots = append(roots, idx.cfg.ProjectRoot)
	}
	roots = append(roots, idx.cfg.Roots...)

	for _, root := range roots {
		abs, err := idx.fs.AbsPath(ctx, m.Path(root))
		if err != nil {
			return fmt.Errorf("resolve root %s: %w", root, err)
		}

		info, err := idx.fs.FileInfo(ctx, abs)
		if err != nil {
			slog.Warn("Skipping unreadable index root", "root", root, "error", err)
			continue
		}

		if !info.IsDir() {
			idx.indexFile(ctx, string(abs))
			continue
		}

		err = idx.fs.Walk(ctx, abs, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				slog.Debug("Skipping unreadable path", "path", path, "error", err)
				return nil
			}

			if info.IsDir() {
				return nil
			}

			idx.indexFile(ctx, path)

			return nil
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", root, err)
		}
	}

	slog.Debug("Candidate index built", "files", len(idx.handles), "roots", len(roots))

	return nil
}

func (idx *LocalCandidateIndex) indexFile(ctx context.Context, path string) {
	if hasExt(path, idx.cfg.ArchiveExtensions) {
		idx.indexArchive(ctx, path)
		return
	}

	idx.add(idx.diskHandle(path))
}

func (idx *LocalCandidateIndex) indexArchive(ctx context.Context, archive string) {
	entries, err := idx.archives.Entries(ctx, archive)
	if err != nil {
		slog.Warn("Failed to index archive", "archive", archive, "error", err)
		return
	}

	for _, inner := range entries {
		idx.add(idx.archiveHandle(archive, inner))
	}
}

func (idx *LocalCandidateIndex) add(h m.FileHandle) {
	if _, ok := idx.byIdentity[h.Identity]; ok {
		return
	}

	idx.byIdentity[h.Identity] = len(idx.handles)
	idx.byName[h.Name] = append(idx.byName[h.Name], len(idx.handles))
	idx.handles = append(idx.handles, h)
}

func (idx *LocalCandidateIndex) diskHandle(path string) m.FileHandle {
	return m.FileHandle{
		Identity:     path,
		Name:         filepath.Base(path),
		StoragePath:  path,
		Compiled:     hasExt(path, idx.cfg.CompiledExtensions),
		HasNamespace: idx.declaresNamespace(path),
	}
}

func (idx *LocalCandidateIndex) archiveHandle(archive, inner string) m.FileHandle {
	identity := archive + m.ArchiveSeparator + inner

	return m.FileHandle{
		Identity:     identity,
		Name:         path.Base(inner),
		StoragePath:  identity,
		Archive:      archive,
		Inner:        inner,
		Compiled:     hasExt(inner, idx.cfg.CompiledExtensions),
		HasNamespace: idx.declaresNamespace(inner),
	}
}

func (idx *LocalCandidateIndex) declaresNamespace(name string) bool {
	return hasExt(name, idx.cfg.SourceExtensions) || hasExt(name, idx.cfg.CompiledExtensions)
}

// FindByName returns every indexed file called name.
func (idx *LocalCandidateIndex) FindByName(ctx context.Context, name string) ([]m.FileHandle, error) {
	if err := idx.Build(ctx); err != nil {
		return nil, err
	}

	positions := idx.byName[name]
	found := make([]m.FileHandle, 0, len(positions))
	for _, pos := range positions {
		found = append(found, idx.handles[pos])
	}

	return found, nil
}

// Lookup finds p in the index or, failing that, on disk.
func (idx *LocalCandidateIndex) Lookup(ctx context.Context, p string) (m.FileHandle, bool) {
	if archive, inner, ok := strings.Cut(p, m.ArchiveSeparator); ok {
		h, err := idx.OpenArchiveEntry(ctx, archive, inner)
		if err != nil {
			return m.FileHandle{}, false
		}

		return h, true
	}

	if err := idx.Build(ctx); err != nil {
		slog.Warn("Candidate index unavailable", "error", err)
	}

	abs, err := idx.fs.AbsPath(ctx, m.Path(p))
	if err != nil {
		return m.FileHandle{}, false
	}

	if pos, ok := idx.byIdentity[string(abs)]; ok {
		return idx.handles[pos], true
	}

	info, err := idx.fs.FileInfo(ctx, abs)
	if err != nil || info.IsDir() {
		return m.FileHandle{}, false
	}

	return idx.diskHandle(string(abs)), true
}

// LookupQualified scans the index in discovery order for namespace/fileName.
func (idx *LocalCandidateIndex) LookupQualified(ctx context.Context, namespace, fileName string) (m.FileHandle, bool) {
	if err := idx.Build(ctx); err != nil {
		return m.FileHandle{}, false
	}

	rel := fileName
	if namespace != "" {
		rel = strings.ReplaceAll(namespace, ".", "/") + "/" + fileName
	}

	for _, pos := range idx.byName[fileName] {
		h := idx.handles[pos]
		if endsWithPath(h, rel) {
			return h, true
		}
	}

	return m.FileHandle{}, false
}

// OpenArchiveEntry returns the handle for inner inside archive, reading the
// archive when the entry was not indexed.
func (idx *LocalCandidateIndex) OpenArchiveEntry(ctx context.Context, archive, inner string) (m.FileHandle, error) {
	if err := idx.Build(ctx); err != nil {
		slog.Warn("Candidate index unavailable", "error", err)
	}

	abs, err := idx.fs.AbsPath(ctx, m.Path(archive))
	if err != nil {
		return m.FileHandle{}, err
	}

	h := idx.archiveHandle(string(abs), inner)
	if pos, ok := idx.byIdentity[h.Identity]; ok {
		return idx.handles[pos], nil
	}

	if _, err := idx.archives.ReadEntry(ctx, h.Archive, h.Inner); err != nil {
		return m.FileHandle{}, err
	}

	return h, nil
}

// ReadText returns the content of h. Compiled artifacts yield a one-line stub.
func (idx *LocalCandidateIndex) ReadText(ctx context.Context, h m.FileHandle) (string, error) {
	if h.Compiled {
		return idx.compiledStub(ctx, h), nil
	}

	if text, ok := idx.texts.Get(h.Identity); ok {
		return text, nil
	}

	data, err := idx.readBytes(ctx, h)
	if err != nil {
		return "", err
	}

	text := string(data)
	idx.texts.Add(h.Identity, text)

	return text, nil
}

func (idx *LocalCandidateIndex) compiledStub(ctx context.Context, h m.FileHandle) string {
	name := className(h.Name)

	ns, err := idx.ReadNamespace(ctx, h)
	if err == nil && ns != "" {
		name = ns + "." + name
	}

	return "// compiled artifact " + name + ": source not available"
}

func (idx *LocalCandidateIndex) readBytes(ctx context.Context, h m.FileHandle) ([]byte, error) {
	if h.InArchive() {
		return idx.archives.ReadEntry(ctx, h.Archive, h.Inner)
	}

	return idx.fs.ReadFile(ctx, m.Path(h.StoragePath))
}

// ReadNamespace returns the package declared by h. Results are memoized.
func (idx *LocalCandidateIndex) ReadNamespace(ctx context.Context, h m.FileHandle) (string, error) {
	if !h.HasNamespace {
		return "", nil
	}

	idx.nsMu.Lock()
	ns, ok := idx.namespaces[h.Identity]
	idx.nsMu.Unlock()

	if ok {
		return ns, nil
	}

	data, err := idx.readBytes(ctx, h)
	if err != nil {
		return "", err
	}

	if h.Compiled {
		ns, err = classFileNamespace(data)
	} else {
		ns, err = sniffPackage(data)
	}

	if err != nil || (ns == "" && h.InArchive()) {
		ns = archiveDirNamespace(h.Inner)
	}

	idx.nsMu.Lock()
	idx.namespaces[h.Identity] = ns
	idx.nsMu.Unlock()

	return ns, nil
}

// IsCompiledArtifact reports whether h is a compiled binary.
func (idx *LocalCandidateIndex) IsCompiledArtifact(h m.FileHandle) bool {
	return h.Compiled
}

// NavigationTarget maps a compiled file to its source: lib.jar!/a/B.class
// goes to lib-sources.jar!/a/B.java, a loose a/B.class to any indexed file
// ending in a/B.java.
func (idx *LocalCandidateIndex) NavigationTarget(ctx context.Context, h m.FileHandle) (m.FileHandle, bool) {
	if !h.Compiled {
		return m.FileHandle{}, false
	}

	if err := idx.Build(ctx); err != nil {
		return m.FileHandle{}, false
	}

	stem := className(h.Name)

	if h.InArchive() {
		ext := filepath.Ext(h.Archive)
		sources := strings.TrimSuffix(h.Archive, ext) + "-sources" + ext
		dir := path.Dir(h.Inner)

		for _, srcExt := range idx.cfg.SourceExtensions {
			inner := path.Join(dir, stem+srcExt)
			if pos, ok := idx.byIdentity[sources+m.ArchiveSeparator+inner]; ok {
				return idx.handles[pos], true
			}
		}

		return m.FileHandle{}, false
	}

	ns, err := idx.ReadNamespace(ctx, h)
	if err != nil {
		return m.FileHandle{}, false
	}

	for _, srcExt := range idx.cfg.SourceExtensions {
		if target, ok := idx.LookupQualified(ctx, ns, stem+srcExt); ok && !target.Compiled {
			return target, true
		}
	}

	return m.FileHandle{}, false
}

func sniffPackage(data []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	for line := 0; line < namespaceSniffLines && scanner.Scan(); line++ {
		if match := packageDecl.FindSubmatch(scanner.Bytes()); match != nil {
			return string(match[1]), nil
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return "", err
	}

	return "", nil
}

func archiveDirNamespace(inner string) string {
	dir := path.Dir(inner)
	if dir == "." || dir == "/" {
		return ""
	}

	return strings.ReplaceAll(strings.Trim(dir, "/"), "/", ".")
}

// className strips the extension and any nested-class suffix from a file name.
func className(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.Index(stem, "$"); i > 0 {
		stem = stem[:i]
	}

	return stem
}

func endsWithPath(h m.FileHandle, rel string) bool {
	location := filepath.ToSlash(h.Identity)
	if h.InArchive() {
		location = "/" + h.Inner
	}

	return location == rel || strings.HasSuffix(location, "/"+rel)
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}

	return false
}
