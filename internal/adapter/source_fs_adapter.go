// Package adapter contains infrastructure adapters for the promptgen CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// selection logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ExpandDirectory returns every regular file below root, recursively, in
	// lexical order.
	ExpandDirectory(ctx context.Context, root m.Path) ([]m.Path, error)

	// AbsPath returns the absolute, cleaned form of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	exclude []*regexp.Regexp
	ignored map[string]struct{}
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter. Paths matching
// any of the exclude regular expressions are skipped by Walk and
// ExpandDirectory.
func NewLocalSourceFSAdapter(exclude ...string) (*LocalSourceFSAdapter, error) {
	compiled := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return &LocalSourceFSAdapter{exclude: compiled, ignored: make(map[string]struct{})}, nil
}

// Ignore hides individual files from Walk and ExpandDirectory. Paths are
// compared in absolute form.
func (a *LocalSourceFSAdapter) Ignore(paths ...string) {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}

		a.ignored[abs] = struct{}{}
	}
}

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".idea":        {},
	".promptgen":   {},
	"vendor":       {},
	"node_modules": {},
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || a.skipDir(info.Name()) || a.excluded(path) {
				return filepath.SkipDir
			}
		}

		if !info.IsDir() && a.excluded(path) {
			return nil
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - reading user-selected files is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// ExpandDirectory flattens root into the regular files beneath it. The
// recursion returns slices instead of filling a shared collection, so each
// call is independent of every other.
func (a *LocalSourceFSAdapter) ExpandDirectory(ctx context.Context, root m.Path) ([]m.Path, error) {
	files, err := a.expand(ctx, string(root))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(files))
	for _, f := range files {
		paths = append(paths, m.Path(f))
	}

	return paths, nil
}

func (a *LocalSourceFSAdapter) expand(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var files []string

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if a.excluded(path) {
			continue
		}

		if entry.IsDir() {
			if a.skipDir(entry.Name()) {
				continue
			}

			nested, err := a.expand(ctx, path)
			if err != nil {
				return nil, err
			}

			files = append(files, nested...)

			continue
		}

		if entry.Type().IsRegular() {
			files = append(files, path)
		}
	}

	return files, nil
}

// AbsPath returns the absolute, cleaned form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func (a *LocalSourceFSAdapter) skipDir(name string) bool {
	_, ok := skippedDirs[name]
	return ok
}

func (a *LocalSourceFSAdapter) excluded(path string) bool {
	if len(a.ignored) > 0 {
		if abs, err := filepath.Abs(path); err == nil {
			if _, ok := a.ignored[abs]; ok {
				return true
			}
		}
	}

	slashed := filepath.ToSlash(path)
	for _, re := range a.exclude {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}
