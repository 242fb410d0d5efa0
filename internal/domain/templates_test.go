package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptgen.dev/pkg/promptgen/internal/adapter"
	adaptermocks "promptgen.dev/pkg/promptgen/internal/adapter/mocks"
	"promptgen.dev/pkg/promptgen/internal/domain"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

func newTestStore(t *testing.T) *adapter.YAMLSettingsStore {
	t.Helper()

	return adapter.NewYAMLSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
}

func TestLoadPromptTexts_Defaults(t *testing.T) {
	texts, err := domain.LoadPromptTexts(context.Background(), newTestStore(t))
	require.NoError(t, err)

	assert.Equal(t, domain.PromptTexts{
		Head:             "Please fix this project for me",
		ProjectHeader:    "PROJECT CLASSES:",
		AdditionalHeader: "ADDITIONAL CONTEXT:",
	}, texts)
}

func TestLoadPromptTexts_StoreError(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	store.EXPECT().GetText(context.Background(), adapter.KeyHead).Return("", false, errors.New("locked"))

	_, err := domain.LoadPromptTexts(context.Background(), store)
	require.Error(t, err)
}

func TestTemplateStore_CaptureAndApply(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	templates := domain.NewTemplateStore(store)

	require.NoError(t, store.SetText(ctx, adapter.KeyHead, "Review"))
	require.NoError(t, store.SetList(ctx, string(m.ProjectPanel), []string{"/p/A.java", "classpath:a.B"}))
	require.NoError(t, store.SetList(ctx, string(m.AdditionalPanel), []string{"/lib/x.jar!/c/D.java"}))

	captured, err := templates.Capture(ctx, "  review  ")
	require.NoError(t, err)
	assert.Equal(t, "review", captured.Name)
	assert.Equal(t, "Review", captured.HeadText)
	assert.Equal(t, "PROJECT CLASSES:", captured.SectionHeaderA)

	require.NoError(t, store.SetText(ctx, adapter.KeyHead, "Something else"))
	require.NoError(t, store.SetList(ctx, string(m.ProjectPanel), nil))

	applied, err := templates.Apply(ctx, "review")
	require.NoError(t, err)
	assert.Equal(t, captured, applied)

	head, _, err := store.GetText(ctx, adapter.KeyHead)
	require.NoError(t, err)
	assert.Equal(t, "Review", head)

	refs, err := store.GetList(ctx, string(m.ProjectPanel))
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/A.java", "classpath:a.B"}, refs)

	refs, err = store.GetList(ctx, string(m.AdditionalPanel))
	require.NoError(t, err)
	assert.Equal(t, []string{"/lib/x.jar!/c/D.java"}, refs)
}

func TestTemplateStore_SaveRejectsEmptyName(t *testing.T) {
	templates := domain.NewTemplateStore(newTestStore(t))

	err := templates.Save(context.Background(), m.Template{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyTemplateName)
}

func TestTemplateStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	templates := domain.NewTemplateStore(newTestStore(t))

	require.NoError(t, templates.Save(ctx, m.Template{Name: "t", HeadText: "one"}))
	require.NoError(t, templates.Save(ctx, m.Template{Name: "t", HeadText: "two"}))

	got, ok, err := templates.Get(ctx, "t")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", got.HeadText)
}

func TestTemplateStore_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	templates := domain.NewTemplateStore(newTestStore(t))

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, templates.Save(ctx, m.Template{Name: name}))
	}

	names, err := templates.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	require.NoError(t, templates.Delete(ctx, "mid"))
	assert.ErrorIs(t, templates.Delete(ctx, "mid"), domain.ErrTemplateNotFound)

	_, err = templates.Apply(ctx, "mid")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)

	names, err = templates.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}
