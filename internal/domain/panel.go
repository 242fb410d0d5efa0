package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

// Panel owns one SelectionSet and the batches that change it.
//
// Batches run in two phases. Begin* starts the compute phase on its own
// goroutine and delivers one outcome on the returned channel. Apply is the
// only method that changes the selection and must be called from the
// goroutine that owns the panel. While a batch is in flight every further
// Begin* call fails with ErrBatchInFlight.
type Panel interface {
	ID() m.PanelID
	BeginAdd(ctx context.Context, inputs []string) (<-chan m.BatchOutcome, error)
	BeginLoad(ctx context.Context, refs []string) (<-chan m.BatchOutcome, error)
	Apply(ctx context.Context, outcome m.BatchOutcome) (m.BatchSummary, error)
	// RunAdd is BeginAdd, receive and Apply in one call.
	RunAdd(ctx context.Context, inputs []string) (m.BatchSummary, error)
	// RunLoad is BeginLoad, receive and Apply in one call.
	RunLoad(ctx context.Context, refs []string) (m.BatchSummary, error)
	// Restore reloads the class-only flag and the persisted references.
	Restore(ctx context.Context) (m.BatchSummary, error)
	// Remove drops entries matched by identity or by reference and persists.
	Remove(ctx context.Context, keys ...string) (int, error)
	Entries() []m.ResolvedFile
	Selection() *SelectionSet
	InFlight() bool
	ClassOnly() bool
	SetClassOnly(ctx context.Context, on bool) error
}

// PanelConfig configures a panel.
type PanelConfig struct {
	ID       m.PanelID
	Parallel int
	// ClassExtensions are kept by directory expansion in class-only mode.
	ClassExtensions []string
	// ScopeRoot, when set, drops plain-path inputs outside of it.
	ScopeRoot string
}

type panel struct {
	id        m.PanelID
	set       *SelectionSet
	inFlight  atomic.Bool
	classOnly bool
	store     adapter.SettingsStore
	runner    *batchRunner
}

// NewPanel creates an empty panel.
func NewPanel(cfg PanelConfig, fs adapter.SourceFSAdapter, resolver Resolver, store adapter.SettingsStore) Panel {
	return &panel{
		id:    cfg.ID,
		set:   NewSelectionSet(),
		store: store,
		runner: &batchRunner{
			fs:        fs,
			resolver:  resolver,
			parallel:  cfg.Parallel,
			classExts: cfg.ClassExtensions,
			scopeRoot: cfg.ScopeRoot,
		},
	}
}

func (p *panel) ID() m.PanelID {
	return p.id
}

func (p *panel) BeginAdd(ctx context.Context, inputs []string) (<-chan m.BatchOutcome, error) {
	return p.begin(ctx, m.BatchAdd, inputs)
}

func (p *panel) BeginLoad(ctx context.Context, refs []string) (<-chan m.BatchOutcome, error) {
	return p.begin(ctx, m.BatchLoad, refs)
}

func (p *panel) begin(ctx context.Context, mode m.BatchMode, inputs []string) (<-chan m.BatchOutcome, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		slog.Info("Ignoring batch while another is running", "panel", p.id, "mode", mode)
		return nil, ErrBatchInFlight
	}

	classOnly := p.classOnly
	batch := append([]string(nil), inputs...)
	out := make(chan m.BatchOutcome, 1)

	go func() {
		defer close(out)
		out <- p.runner.compute(ctx, p.id, mode, batch, classOnly)
	}()

	return out, nil
}

func (p *panel) Apply(ctx context.Context, outcome m.BatchOutcome) (m.BatchSummary, error) {
	defer p.inFlight.Store(false)

	summary := m.BatchSummary{
		Panel:    p.id,
		Mode:     outcome.Mode,
		Failures: outcome.Failures,
		Skipped:  outcome.Skipped,
	}

	if outcome.Err != nil {
		summary.Total = p.set.Len()
		return summary, fmt.Errorf("batch for %s: %w", p.id, outcome.Err)
	}

	if outcome.Mode == m.BatchLoad {
		p.set.Clear()
	}

	for _, f := range outcome.Files {
		if p.set.Add(f) {
			summary.Added++
		} else {
			summary.Duplicates++
		}
	}

	summary.Total = p.set.Len()

	slog.Info("Batch applied",
		"panel", p.id,
		"mode", outcome.Mode,
		"added", summary.Added,
		"duplicates", summary.Duplicates,
		"failed", summary.Failed(),
		"total", summary.Total,
	)

	if outcome.Mode == m.BatchAdd && summary.Added > 0 {
		if err := p.persist(ctx); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (p *panel) RunAdd(ctx context.Context, inputs []string) (m.BatchSummary, error) {
	return p.run(ctx, m.BatchAdd, inputs)
}

func (p *panel) RunLoad(ctx context.Context, refs []string) (m.BatchSummary, error) {
	return p.run(ctx, m.BatchLoad, refs)
}

func (p *panel) run(ctx context.Context, mode m.BatchMode, inputs []string) (m.BatchSummary, error) {
	out, err := p.begin(ctx, mode, inputs)
	if err != nil {
		return m.BatchSummary{Panel: p.id, Mode: mode, Total: p.set.Len()}, err
	}

	return p.Apply(ctx, <-out)
}

func (p *panel) Restore(ctx context.Context) (m.BatchSummary, error) {
	value, ok, err := p.store.GetText(ctx, adapter.ClassOnlyKey(p.id))
	if err != nil {
		return m.BatchSummary{}, fmt.Errorf("read class-only flag: %w", err)
	}

	if ok {
		p.classOnly, _ = strconv.ParseBool(value)
	}

	refs, err := p.store.GetList(ctx, string(p.id))
	if err != nil {
		return m.BatchSummary{}, fmt.Errorf("read %s: %w", p.id, err)
	}

	return p.RunLoad(ctx, refs)
}

func (p *panel) Remove(ctx context.Context, keys ...string) (int, error) {
	removed := 0

	for _, key := range keys {
		if p.removeKey(key) {
			removed++
			continue
		}

		// Existing plain paths are stored absolute.
		if m.ParseReference(key).Kind != m.KindPlainPath {
			continue
		}

		if abs := p.runner.absolute(ctx, key); abs != key && p.removeKey(abs) {
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}

	return removed, p.persist(ctx)
}

// removeKey drops the entry whose identity or reference equals key.
func (p *panel) removeKey(key string) bool {
	if p.set.Remove(key) {
		return true
	}

	for _, e := range p.set.Entries() {
		if e.Reference == key {
			return p.set.Remove(e.Identity)
		}
	}

	return false
}

func (p *panel) Entries() []m.ResolvedFile {
	return p.set.Entries()
}

func (p *panel) Selection() *SelectionSet {
	return p.set
}

func (p *panel) InFlight() bool {
	return p.inFlight.Load()
}

func (p *panel) ClassOnly() bool {
	return p.classOnly
}

func (p *panel) SetClassOnly(ctx context.Context, on bool) error {
	p.classOnly = on

	if err := p.store.SetText(ctx, adapter.ClassOnlyKey(p.id), strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("store class-only flag: %w", err)
	}

	return nil
}

func (p *panel) persist(ctx context.Context) error {
	if err := p.store.SetList(ctx, string(p.id), p.set.ToOrderedReferences()); err != nil {
		slog.Error("Failed to persist selection", "panel", p.id, "error", err)
		return fmt.Errorf("persist %s: %w", p.id, err)
	}

	return nil
}
