package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

const defaultParallel = 4

// batchRunner performs the compute phase of a batch: directory expansion
// followed by concurrent resolution. It never touches a SelectionSet.
type batchRunner struct {
	fs        adapter.SourceFSAdapter
	resolver  Resolver
	parallel  int
	classExts []string
	// scopeRoot restricts plain-path inputs to files below it when set.
	scopeRoot string
}

func (b *batchRunner) compute(ctx context.Context, panel m.PanelID, mode m.BatchMode, inputs []string, classOnly bool) m.BatchOutcome {
	outcome := m.BatchOutcome{Panel: panel, Mode: mode}

	refs := inputs
	if mode == m.BatchAdd {
		refs, outcome.Skipped = b.expand(ctx, inputs, classOnly)
	}

	outcome.Files, outcome.Failures = b.resolveAll(ctx, refs)
	outcome.Err = ctx.Err()

	slog.Debug("Batch computed",
		"panel", panel,
		"mode", mode,
		"inputs", len(inputs),
		"resolved", len(outcome.Files),
		"failed", len(outcome.Failures),
		"skipped", len(outcome.Skipped),
	)

	return outcome
}

// expand replaces directories by the files below them and makes existing
// plain paths absolute.
func (b *batchRunner) expand(ctx context.Context, inputs []string, classOnly bool) ([]string, []string) {
	var refs, skipped []string

	for _, input := range inputs {
		if ctx.Err() != nil {
			break
		}

		if m.ParseReference(input).Kind != m.KindPlainPath {
			refs = append(refs, input)
			continue
		}

		info, err := b.fs.FileInfo(ctx, m.Path(input))
		if err != nil {
			refs = append(refs, input)
			continue
		}

		if !info.IsDir() {
			abs := b.absolute(ctx, input)
			if b.outOfScope(ctx, abs) {
				skipped = append(skipped, input)
				continue
			}

			refs = append(refs, abs)

			continue
		}

		files, err := b.fs.ExpandDirectory(ctx, m.Path(input))
		if err != nil {
			slog.Warn("Failed to expand directory", "path", input, "error", err)

			skipped = append(skipped, input)

			continue
		}

		for _, f := range files {
			if classOnly && !hasExtension(string(f), b.classExts) {
				continue
			}

			abs := b.absolute(ctx, string(f))
			if b.outOfScope(ctx, abs) {
				skipped = append(skipped, abs)
				continue
			}

			refs = append(refs, abs)
		}
	}

	return refs, skipped
}

func (b *batchRunner) absolute(ctx context.Context, path string) string {
	abs, err := b.fs.AbsPath(ctx, m.Path(path))
	if err != nil {
		return path
	}

	return string(abs)
}

func (b *batchRunner) outOfScope(ctx context.Context, path string) bool {
	if b.scopeRoot == "" {
		return false
	}

	root, err := b.fs.AbsPath(ctx, m.Path(b.scopeRoot))
	if err != nil {
		return false
	}

	rel, err := b.fs.RelPath(ctx, root, m.Path(path))
	if err != nil {
		return true
	}

	r := string(rel)

	return r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator))
}

type indexedResult struct {
	pos  int
	file m.ResolvedFile
	err  error
}

// resolveAll resolves refs concurrently and returns the successes and the
// failures, each in input order.
func (b *batchRunner) resolveAll(ctx context.Context, refs []string) ([]m.ResolvedFile, []m.BatchFailure) {
	results := make([]indexedResult, 0, len(refs))

	var resultsMutex sync.Mutex

	var group errgroup.Group

	parallel := b.parallel
	if parallel <= 0 {
		parallel = defaultParallel
	}

	group.SetLimit(parallel)

	for i, ref := range refs {
		pos, currentRef := i, ref

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			file, err := b.resolver.Resolve(ctx, currentRef)

			resultsMutex.Lock()

			results = append(results, indexedResult{pos: pos, file: file, err: err})

			resultsMutex.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].pos < results[j].pos
	})

	var (
		files    []m.ResolvedFile
		failures []m.BatchFailure
	)

	for _, r := range results {
		if r.err != nil {
			failures = append(failures, m.BatchFailure{Reference: refs[r.pos], Err: r.err})
			continue
		}

		files = append(files, r.file)
	}

	return files, failures
}
