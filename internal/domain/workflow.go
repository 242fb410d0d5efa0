package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	"promptgen.dev/pkg/promptgen/internal/controller"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

// AddArgs contains the arguments for adding references to a panel.
type AddArgs struct {
	Panel      m.PanelID
	References []string
	// ClassOnly switches the panel to class-only mode before adding.
	ClassOnly bool
}

// RemoveArgs contains the arguments for removing entries from a panel.
type RemoveArgs struct {
	Panel m.PanelID
	// Keys are identities or persisted references.
	Keys []string
}

// GenerateArgs contains the arguments for generating a prompt.
type GenerateArgs struct {
	// Head overrides the stored prompt head for this prompt only.
	Head string
	// Output receives the prompt instead of the clipboard when set.
	Output io.Writer
}

// HeadArgs contains the prompt texts to store. Empty fields are left unchanged.
type HeadArgs struct {
	Head             string
	ProjectHeader    string
	AdditionalHeader string
}

// ClassOnlyArgs contains the arguments for toggling class-only mode.
type ClassOnlyArgs struct {
	Panel   m.PanelID
	Enabled bool
}

// TemplateArgs names a template.
type TemplateArgs struct {
	Name string
}

// Workflow defines the use cases driven by the CLI.
type Workflow interface {
	Add(ctx context.Context, args AddArgs) error
	Remove(ctx context.Context, args RemoveArgs) error
	List(ctx context.Context) error
	Generate(ctx context.Context, args GenerateArgs) error
	SetHead(ctx context.Context, args HeadArgs) error
	SetClassOnly(ctx context.Context, args ClassOnlyArgs) error
	SaveTemplate(ctx context.Context, args TemplateArgs) error
	LoadTemplate(ctx context.Context, args TemplateArgs) error
	DeleteTemplate(ctx context.Context, args TemplateArgs) error
	ListTemplates(ctx context.Context) error
	Interactive(ctx context.Context) error
}

type workflow struct {
	adapter.SettingsStore
	adapter.ClipboardSink
	controller.UI
	TemplateStore

	assembler Assembler
	panels    map[m.PanelID]Panel
	restored  bool
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	store adapter.SettingsStore,
	clipboard adapter.ClipboardSink,
	ui controller.UI,
	templates TemplateStore,
	assembler Assembler,
	panels ...Panel,
) Workflow {
	byID := make(map[m.PanelID]Panel, len(panels))
	for _, p := range panels {
		byID[p.ID()] = p
	}

	return &workflow{
		SettingsStore: store,
		ClipboardSink: clipboard,
		UI:            ui,
		TemplateStore: templates,
		assembler:     assembler,
		panels:        byID,
	}
}

func (w *workflow) Add(ctx context.Context, args AddArgs) error {
	p, err := w.panel(args.Panel)
	if err != nil {
		return err
	}

	if err := w.restore(ctx); err != nil {
		return err
	}

	if args.ClassOnly && !p.ClassOnly() {
		if err := p.SetClassOnly(ctx, true); err != nil {
			return err
		}
	}

	summary, err := p.RunAdd(ctx, args.References)
	if err != nil {
		slog.Error("Failed to add references", "panel", p.ID(), "error", err)
		return fmt.Errorf("add to %s: %w", p.ID(), err)
	}

	return w.DisplayBatchSummary(ctx, summary)
}

func (w *workflow) Remove(ctx context.Context, args RemoveArgs) error {
	p, err := w.panel(args.Panel)
	if err != nil {
		return err
	}

	if err := w.restore(ctx); err != nil {
		return err
	}

	removed, err := p.Remove(ctx, args.Keys...)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", p.ID(), err)
	}

	return w.DisplayMessage(ctx, fmt.Sprintf("Removed %d file(s) from %s files.", removed, p.ID().Label()))
}

func (w *workflow) List(ctx context.Context) error {
	if err := w.restore(ctx); err != nil {
		return err
	}

	for _, id := range m.Panels {
		p, ok := w.panels[id]
		if !ok {
			continue
		}

		if err := w.DisplaySelection(ctx, id, p.Entries(), p.ClassOnly()); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	if err := w.restore(ctx); err != nil {
		return err
	}

	prompt, err := w.assemble(ctx, args.Head)
	if err != nil {
		return err
	}

	sink := w.ClipboardSink
	if args.Output != nil {
		sink = adapter.WriterClipboard{W: args.Output}
	}

	if err := sink.Write(prompt); err != nil {
		slog.Error("Failed to deliver prompt", "error", err)
		return fmt.Errorf("deliver prompt: %w", err)
	}

	return w.DisplayGenerated(ctx, prompt, args.Output == nil)
}

func (w *workflow) SetHead(ctx context.Context, args HeadArgs) error {
	texts := []struct{ key, value string }{
		{adapter.KeyHead, args.Head},
		{adapter.KeyProjectHeader, args.ProjectHeader},
		{adapter.KeyAdditionalHeader, args.AdditionalHeader},
	}

	for _, text := range texts {
		if text.value == "" {
			continue
		}

		if err := w.SetText(ctx, text.key, text.value); err != nil {
			return fmt.Errorf("store %s: %w", text.key, err)
		}
	}

	return w.DisplayMessage(ctx, "Prompt texts updated.")
}

func (w *workflow) SetClassOnly(ctx context.Context, args ClassOnlyArgs) error {
	p, err := w.panel(args.Panel)
	if err != nil {
		return err
	}

	if err := p.SetClassOnly(ctx, args.Enabled); err != nil {
		return err
	}

	return w.DisplayMessage(ctx, fmt.Sprintf("Class-only mode %s for %s files.", onOff(args.Enabled), p.ID().Label()))
}

func (w *workflow) SaveTemplate(ctx context.Context, args TemplateArgs) error {
	t, err := w.Capture(ctx, args.Name)
	if err != nil {
		return err
	}

	return w.DisplayMessage(ctx, fmt.Sprintf("Saved template %q (%d project, %d additional).",
		t.Name, len(t.ReferencesA), len(t.ReferencesB)))
}

func (w *workflow) LoadTemplate(ctx context.Context, args TemplateArgs) error {
	if _, err := w.Apply(ctx, args.Name); err != nil {
		return err
	}

	for _, id := range m.Panels {
		p, ok := w.panels[id]
		if !ok {
			continue
		}

		summary, err := p.Restore(ctx)
		if err != nil {
			return fmt.Errorf("reload %s: %w", id, err)
		}

		if err := w.DisplayBatchSummary(ctx, summary); err != nil {
			return err
		}
	}

	w.restored = true

	return w.DisplayMessage(ctx, fmt.Sprintf("Loaded template %q.", args.Name))
}

func (w *workflow) DeleteTemplate(ctx context.Context, args TemplateArgs) error {
	if err := w.Delete(ctx, args.Name); err != nil {
		return err
	}

	return w.DisplayMessage(ctx, fmt.Sprintf("Deleted template %q.", args.Name))
}

func (w *workflow) ListTemplates(ctx context.Context) error {
	names, err := w.ListNames(ctx)
	if err != nil {
		return err
	}

	return w.DisplayTemplates(ctx, names)
}

func (w *workflow) Interactive(ctx context.Context) error {
	if err := w.restore(ctx); err != nil {
		return err
	}

	return w.RunInteractive(ctx, &session{w: w})
}

func (w *workflow) panel(id m.PanelID) (Panel, error) {
	if id == "" {
		id = m.ProjectPanel
	}

	p, ok := w.panels[id]
	if !ok {
		return nil, fmt.Errorf("unknown panel %q", id)
	}

	return p, nil
}

// restore loads every panel from the settings store once.
func (w *workflow) restore(ctx context.Context) error {
	if w.restored {
		return nil
	}

	for _, id := range m.Panels {
		p, ok := w.panels[id]
		if !ok {
			continue
		}

		summary, err := p.Restore(ctx)
		if err != nil {
			slog.Error("Failed to restore selection", "panel", id, "error", err)
			return fmt.Errorf("restore %s: %w", id, err)
		}

		for _, f := range summary.Failures {
			slog.Warn("Failed to restore reference", "panel", id, "reference", f.Reference, "error", f.Err)
		}
	}

	w.restored = true

	return nil
}

func (w *workflow) assemble(ctx context.Context, headOverride string) (string, error) {
	texts, err := LoadPromptTexts(ctx, w.SettingsStore)
	if err != nil {
		return "", err
	}

	if headOverride != "" {
		texts.Head = headOverride
	}

	return w.assembler.Assemble(
		texts.Head,
		texts.ProjectHeader, w.selection(m.ProjectPanel),
		texts.AdditionalHeader, w.selection(m.AdditionalPanel),
	), nil
}

func (w *workflow) selection(id m.PanelID) *SelectionSet {
	if p, ok := w.panels[id]; ok {
		return p.Selection()
	}

	return nil
}

// session adapts the workflow to controller.Session for the interactive UI.
type session struct {
	w *workflow
}

func (s *session) Entries(panel m.PanelID) []m.ResolvedFile {
	p, err := s.w.panel(panel)
	if err != nil {
		return nil
	}

	return p.Entries()
}

func (s *session) ClassOnly(panel m.PanelID) bool {
	p, err := s.w.panel(panel)
	if err != nil {
		return false
	}

	return p.ClassOnly()
}

func (s *session) BeginAdd(ctx context.Context, panel m.PanelID, refs []string) (<-chan m.BatchOutcome, error) {
	p, err := s.w.panel(panel)
	if err != nil {
		return nil, err
	}

	return p.BeginAdd(ctx, refs)
}

func (s *session) ApplyBatch(ctx context.Context, outcome m.BatchOutcome) (m.BatchSummary, error) {
	p, err := s.w.panel(outcome.Panel)
	if err != nil {
		return m.BatchSummary{}, err
	}

	return p.Apply(ctx, outcome)
}

func (s *session) Remove(ctx context.Context, panel m.PanelID, identity string) error {
	p, err := s.w.panel(panel)
	if err != nil {
		return err
	}

	_, err = p.Remove(ctx, identity)

	return err
}

func (s *session) ToggleClassOnly(ctx context.Context, panel m.PanelID) (bool, error) {
	p, err := s.w.panel(panel)
	if err != nil {
		return false, err
	}

	on := !p.ClassOnly()

	return on, p.SetClassOnly(ctx, on)
}

func (s *session) Generate(ctx context.Context) (string, error) {
	prompt, err := s.w.assemble(ctx, "")
	if err != nil {
		return "", err
	}

	if err := s.w.ClipboardSink.Write(prompt); err != nil {
		return "", fmt.Errorf("copy prompt: %w", err)
	}

	return prompt, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}

	return "off"
}
