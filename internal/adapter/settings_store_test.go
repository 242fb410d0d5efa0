package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

func settingsStores(t *testing.T) map[string]SettingsStore {
	t.Helper()

	dir := t.TempDir()

	sqlite, err := NewSQLiteSettingsStore(filepath.Join(dir, "db", "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]SettingsStore{
		"yaml":   NewYAMLSettingsStore(filepath.Join(dir, "nested", "settings.yaml")),
		"sqlite": sqlite,
	}
}

func TestSettingsStore_Lists(t *testing.T) {
	for name, store := range settingsStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.GetList(ctx, string(m.ProjectPanel))
			require.NoError(t, err)
			assert.Empty(t, got)

			refs := []string{"/src/B.java", "classpath:com.foo.Bar", "/src/A.java"}
			require.NoError(t, store.SetList(ctx, string(m.ProjectPanel), refs))

			got, err = store.GetList(ctx, string(m.ProjectPanel))
			require.NoError(t, err)
			assert.Equal(t, refs, got)

			require.NoError(t, store.SetList(ctx, string(m.ProjectPanel), refs[:1]))
			got, err = store.GetList(ctx, string(m.ProjectPanel))
			require.NoError(t, err)
			assert.Equal(t, refs[:1], got)

			other, err := store.GetList(ctx, string(m.AdditionalPanel))
			require.NoError(t, err)
			assert.Empty(t, other)
		})
	}
}

func TestSettingsStore_Texts(t *testing.T) {
	for name, store := range settingsStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.GetText(ctx, KeyHead)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.SetText(ctx, KeyHead, "fix it"))
			require.NoError(t, store.SetText(ctx, KeyHead, "fix it\nplease"))

			value, ok, err := store.GetText(ctx, KeyHead)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "fix it\nplease", value)

			require.NoError(t, store.SetText(ctx, ClassOnlyKey(m.AdditionalPanel), ""))
			value, ok, err = store.GetText(ctx, ClassOnlyKey(m.AdditionalPanel))
			require.NoError(t, err)
			assert.True(t, ok, "empty values are still set")
			assert.Equal(t, "", value)
		})
	}
}

func TestSettingsStore_Templates(t *testing.T) {
	for name, store := range settingsStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tpl := m.Template{
				Name:           "bugfix",
				HeadText:       "Fix the bug",
				SectionHeaderA: "PROJECT CLASSES:",
				SectionHeaderB: "ADDITIONAL CONTEXT:",
				ReferencesA:    []string{"/src/A.java"},
				ReferencesB:    []string{"classpath:com.foo.Bar"},
			}
			require.NoError(t, store.SetTemplate(ctx, tpl))
			require.NoError(t, store.SetTemplate(ctx, m.Template{Name: "alpha"}))

			got, ok, err := store.GetTemplate(ctx, "bugfix")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tpl, got)

			tpl.HeadText = "overwritten"
			require.NoError(t, store.SetTemplate(ctx, tpl))
			got, _, err = store.GetTemplate(ctx, "bugfix")
			require.NoError(t, err)
			assert.Equal(t, "overwritten", got.HeadText)

			names, err := store.ListTemplateNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"alpha", "bugfix"}, names)

			require.NoError(t, store.DeleteTemplate(ctx, "alpha"))
			require.NoError(t, store.DeleteTemplate(ctx, "missing"))

			_, ok, err = store.GetTemplate(ctx, "alpha")
			require.NoError(t, err)
			assert.False(t, ok)

			names, err = store.ListTemplateNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"bugfix"}, names)
		})
	}
}

func TestYAMLSettingsStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	ctx := context.Background()

	require.NoError(t, NewYAMLSettingsStore(path).SetList(ctx, "project_files", []string{"/a.java"}))

	got, err := NewYAMLSettingsStore(path).GetList(ctx, "project_files")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.java"}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestYAMLSettingsStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeTestFile(t, path, "lists: [unterminated")

	_, err := NewYAMLSettingsStore(path).GetList(context.Background(), "project_files")
	require.Error(t, err)
}

func TestOpenSettingsStore(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenSettingsStore("yaml", filepath.Join(dir, "s.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &YAMLSettingsStore{}, store)

	store, err = OpenSettingsStore("sqlite", filepath.Join(dir, "s.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSettingsStore{}, store)
	require.NoError(t, store.Close())

	_, err = OpenSettingsStore("mongo", filepath.Join(dir, "s"))
	require.Error(t, err)
}

func TestWriterClipboard(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriterClipboard{W: &buf}.Write("prompt"))
	assert.Equal(t, "prompt\n", buf.String())
}
