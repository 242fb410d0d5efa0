package domain

import (
	"context"
	"fmt"
	"strings"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

// Prompt text defaults.
const (
	DefaultHead             = "Please fix this project for me"
	DefaultProjectHeader    = "PROJECT CLASSES:"
	DefaultAdditionalHeader = "ADDITIONAL CONTEXT:"
)

// PromptTexts holds the free-text parts of a prompt.
type PromptTexts struct {
	Head             string
	ProjectHeader    string
	AdditionalHeader string
}

// LoadPromptTexts reads the prompt texts, filling unset values with defaults.
func LoadPromptTexts(ctx context.Context, store adapter.SettingsStore) (PromptTexts, error) {
	texts := PromptTexts{}

	fields := []struct {
		key   string
		def   string
		value *string
	}{
		{adapter.KeyHead, DefaultHead, &texts.Head},
		{adapter.KeyProjectHeader, DefaultProjectHeader, &texts.ProjectHeader},
		{adapter.KeyAdditionalHeader, DefaultAdditionalHeader, &texts.AdditionalHeader},
	}

	for _, f := range fields {
		v, ok, err := store.GetText(ctx, f.key)
		if err != nil {
			return PromptTexts{}, fmt.Errorf("read %s: %w", f.key, err)
		}

		if !ok {
			v = f.def
		}

		*f.value = v
	}

	return texts, nil
}

// TemplateStore manages named snapshots of the prompt configuration.
type TemplateStore interface {
	// Save stores t, overwriting a template with the same name.
	Save(ctx context.Context, t m.Template) error
	// Get returns the named template.
	Get(ctx context.Context, name string) (m.Template, bool, error)
	// Delete removes the named template.
	Delete(ctx context.Context, name string) error
	// ListNames returns template names in sorted order.
	ListNames(ctx context.Context) ([]string, error)
	// Capture saves the current prompt texts and both reference lists as name.
	Capture(ctx context.Context, name string) (m.Template, error)
	// Apply writes the named template back as the current configuration.
	// References are stored unresolved.
	Apply(ctx context.Context, name string) (m.Template, error)
}

type templateStore struct {
	store adapter.SettingsStore
}

// NewTemplateStore creates a TemplateStore on top of a settings store.
func NewTemplateStore(store adapter.SettingsStore) TemplateStore {
	return &templateStore{store: store}
}

func (s *templateStore) Save(ctx context.Context, t m.Template) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrEmptyTemplateName
	}

	if err := s.store.SetTemplate(ctx, t.Clone()); err != nil {
		return fmt.Errorf("save template %s: %w", t.Name, err)
	}

	return nil
}

func (s *templateStore) Get(ctx context.Context, name string) (m.Template, bool, error) {
	t, ok, err := s.store.GetTemplate(ctx, strings.TrimSpace(name))
	if err != nil {
		return m.Template{}, false, fmt.Errorf("load template %s: %w", name, err)
	}

	return t, ok, nil
}

func (s *templateStore) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	_, ok, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	if err := s.store.DeleteTemplate(ctx, name); err != nil {
		return fmt.Errorf("delete template %s: %w", name, err)
	}

	return nil
}

func (s *templateStore) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.store.ListTemplateNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return names, nil
}

func (s *templateStore) Capture(ctx context.Context, name string) (m.Template, error) {
	texts, err := LoadPromptTexts(ctx, s.store)
	if err != nil {
		return m.Template{}, err
	}

	refsA, err := s.store.GetList(ctx, string(m.ProjectPanel))
	if err != nil {
		return m.Template{}, fmt.Errorf("read %s: %w", m.ProjectPanel, err)
	}

	refsB, err := s.store.GetList(ctx, string(m.AdditionalPanel))
	if err != nil {
		return m.Template{}, fmt.Errorf("read %s: %w", m.AdditionalPanel, err)
	}

	t := m.Template{
		Name:           strings.TrimSpace(name),
		HeadText:       texts.Head,
		SectionHeaderA: texts.ProjectHeader,
		SectionHeaderB: texts.AdditionalHeader,
		ReferencesA:    refsA,
		ReferencesB:    refsB,
	}

	if err := s.Save(ctx, t); err != nil {
		return m.Template{}, err
	}

	return t, nil
}

func (s *templateStore) Apply(ctx context.Context, name string) (m.Template, error) {
	t, ok, err := s.Get(ctx, name)
	if err != nil {
		return m.Template{}, err
	}

	if !ok {
		return m.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	texts := []struct{ key, value string }{
		{adapter.KeyHead, t.HeadText},
		{adapter.KeyProjectHeader, t.SectionHeaderA},
		{adapter.KeyAdditionalHeader, t.SectionHeaderB},
	}

	for _, text := range texts {
		if err := s.store.SetText(ctx, text.key, text.value); err != nil {
			return m.Template{}, fmt.Errorf("apply %s: %w", text.key, err)
		}
	}

	for _, panel := range m.Panels {
		if err := s.store.SetList(ctx, string(panel), t.References(panel)); err != nil {
			return m.Template{}, fmt.Errorf("apply %s: %w", panel, err)
		}
	}

	return t, nil
}
