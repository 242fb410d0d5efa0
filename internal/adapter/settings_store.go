package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// Settings keys.
const (
	KeyHead             = "prompt.head"
	KeyProjectHeader    = "prompt.project_header"
	KeyAdditionalHeader = "prompt.additional_header"
)

// ClassOnlyKey returns the key holding the class-only flag of panel.
func ClassOnlyKey(panel m.PanelID) string {
	return "panel." + string(panel) + ".class_only"
}

// SettingsStore persists reference lists, prompt texts and templates.
type SettingsStore interface {
	GetList(ctx context.Context, key string) ([]string, error)
	SetList(ctx context.Context, key string, values []string) error
	GetText(ctx context.Context, key string) (string, bool, error)
	SetText(ctx context.Context, key, value string) error
	GetTemplate(ctx context.Context, name string) (m.Template, bool, error)
	SetTemplate(ctx context.Context, t m.Template) error
	DeleteTemplate(ctx context.Context, name string) error
	ListTemplateNames(ctx context.Context) ([]string, error)
	Close() error
}

type settingsDocument struct {
	Lists     map[string][]string   `yaml:"lists,omitempty"`
	Texts     map[string]string     `yaml:"texts,omitempty"`
	Templates map[string]m.Template `yaml:"templates,omitempty"`
}

// YAMLSettingsStore keeps all settings in a single YAML file. Every write
// replaces the file atomically.
type YAMLSettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewYAMLSettingsStore returns a store backed by path. The file is created
// on first write.
func NewYAMLSettingsStore(path string) *YAMLSettingsStore {
	return &YAMLSettingsStore{path: path}
}

// GetList returns the list stored under key, or nil.
func (s *YAMLSettingsStore) GetList(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return append([]string(nil), doc.Lists[key]...), nil
}

// SetList replaces the list stored under key.
func (s *YAMLSettingsStore) SetList(_ context.Context, key string, values []string) error {
	return s.update(func(doc *settingsDocument) {
		if doc.Lists == nil {
			doc.Lists = make(map[string][]string)
		}

		doc.Lists[key] = append([]string{}, values...)
	})
}

// GetText returns the text stored under key and whether it was set.
func (s *YAMLSettingsStore) GetText(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", false, err
	}

	value, ok := doc.Texts[key]

	return value, ok, nil
}

// SetText stores value under key.
func (s *YAMLSettingsStore) SetText(_ context.Context, key, value string) error {
	return s.update(func(doc *settingsDocument) {
		if doc.Texts == nil {
			doc.Texts = make(map[string]string)
		}

		doc.Texts[key] = value
	})
}

// GetTemplate returns the named template.
func (s *YAMLSettingsStore) GetTemplate(_ context.Context, name string) (m.Template, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return m.Template{}, false, err
	}

	t, ok := doc.Templates[name]
	if !ok {
		return m.Template{}, false, nil
	}

	t.Name = name

	return t.Clone(), true, nil
}

// SetTemplate stores t, replacing any template with the same name.
func (s *YAMLSettingsStore) SetTemplate(_ context.Context, t m.Template) error {
	return s.update(func(doc *settingsDocument) {
		if doc.Templates == nil {
			doc.Templates = make(map[string]m.Template)
		}

		doc.Templates[t.Name] = t.Clone()
	})
}

// DeleteTemplate removes the named template. Missing names are ignored.
func (s *YAMLSettingsStore) DeleteTemplate(_ context.Context, name string) error {
	return s.update(func(doc *settingsDocument) {
		delete(doc.Templates, name)
	})
}

// ListTemplateNames returns template names in sorted order.
func (s *YAMLSettingsStore) ListTemplateNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Templates))
	for name := range doc.Templates {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// Close is a no-op; the file is not held open.
func (s *YAMLSettingsStore) Close() error {
	return nil
}

func (s *YAMLSettingsStore) update(fn func(doc *settingsDocument)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	fn(&doc)

	return s.save(doc)
}

func (s *YAMLSettingsStore) load() (settingsDocument, error) {
	var doc settingsDocument

	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}

	if err != nil {
		return doc, fmt.Errorf("read settings %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse settings %s: %w", s.path, err)
	}

	return doc, nil
}

func (s *YAMLSettingsStore) save(doc settingsDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("write settings: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close settings: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace settings: %w", err)
	}

	return nil
}

// OpenSettingsStore returns the store selected by driver ("yaml" or "sqlite").
func OpenSettingsStore(driver, path string) (SettingsStore, error) {
	switch driver {
	case "", "yaml":
		return NewYAMLSettingsStore(path), nil
	case "sqlite":
		return NewSQLiteSettingsStore(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
