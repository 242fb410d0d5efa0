package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, model interactiveModel, msg tea.Msg) (interactiveModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	im, ok := next.(interactiveModel)
	require.True(t, ok)

	return im, cmd
}

func TestInteractiveModel_TabSwitchesPanel(t *testing.T) {
	model := newInteractiveModel(context.Background(), NewMockSession(t))
	assert.Equal(t, m.ProjectPanel, model.panel())

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, m.AdditionalPanel, model.panel())

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, m.ProjectPanel, model.panel())
}

func TestInteractiveModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		model := newInteractiveModel(context.Background(), NewMockSession(t))

		_, cmd := update(t, model, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestInteractiveModel_AddRunsBatchAndAppliesIt(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	outcome := m.BatchOutcome{Panel: m.ProjectPanel, Files: files("/p/A.java")}
	out := make(chan m.BatchOutcome, 1)
	out <- outcome

	session.EXPECT().BeginAdd(mock.Anything, m.ProjectPanel, []string{"src/A.java", "classpath:a.B"}).
		Return((<-chan m.BatchOutcome)(out), nil).Once()
	session.EXPECT().ApplyBatch(mock.Anything, outcome).
		Return(m.BatchSummary{Panel: m.ProjectPanel, Added: 1, Total: 1}, nil).Once()

	model, _ = update(t, model, keyRunes("a"))
	require.True(t, model.adding)

	model, _ = update(t, model, keyRunes("src/A.java classpath:a.B"))

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, model.adding)
	assert.Contains(t, model.status, "Resolving 2 reference(s)")

	msg := cmd()
	done, ok := msg.(batchDoneMsg)
	require.True(t, ok)

	model, _ = update(t, model, done)
	assert.False(t, model.failed)
	assert.Equal(t, "project: 1 added, 0 already selected, 0 failed", model.status)
}

func TestInteractiveModel_AddRejectedWhileBusy(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	session.EXPECT().BeginAdd(mock.Anything, m.ProjectPanel, []string{"x"}).
		Return(nil, errors.New("a batch is already running for this panel")).Once()

	model, _ = update(t, model, keyRunes("a"))
	model, _ = update(t, model, keyRunes("x"))

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, model.failed)
	assert.Contains(t, model.status, "already running")
}

func TestInteractiveModel_EscCancelsInput(t *testing.T) {
	model := newInteractiveModel(context.Background(), NewMockSession(t))

	model, _ = update(t, model, keyRunes("a"))
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, model.adding)
}

func TestInteractiveModel_RemoveSelected(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	entries := files("/p/A.java", "/p/B.java")
	session.EXPECT().Entries(m.ProjectPanel).Return(entries)
	session.EXPECT().Remove(mock.Anything, m.ProjectPanel, "/p/B.java").Return(nil).Once()

	model, _ = update(t, model, keyRunes("j"))
	assert.Equal(t, 1, model.cursor[m.ProjectPanel])

	model, _ = update(t, model, keyRunes("d"))
	assert.Equal(t, "Removed B.java", model.status)
	assert.Equal(t, 0, model.cursor[m.ProjectPanel])
}

func TestInteractiveModel_ToggleAndGenerate(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	session.EXPECT().ToggleClassOnly(mock.Anything, m.ProjectPanel).Return(true, nil).Once()
	session.EXPECT().Generate(mock.Anything).Return("abc", nil).Once()

	model, _ = update(t, model, keyRunes("c"))
	assert.Equal(t, "class-only on for project files", model.status)

	model, _ = update(t, model, keyRunes("g"))
	assert.Equal(t, "Prompt copied to clipboard (3 characters)", model.status)
}

func TestInteractiveModel_GenerateFailure(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	session.EXPECT().Generate(mock.Anything).Return("", errors.New("clipboard unavailable")).Once()

	model, _ = update(t, model, keyRunes("g"))
	assert.True(t, model.failed)
	assert.Equal(t, "clipboard unavailable", model.status)
}

func TestInteractiveModel_View(t *testing.T) {
	session := NewMockSession(t)
	model := newInteractiveModel(context.Background(), session)

	session.EXPECT().Entries(m.ProjectPanel).Return(files("/p/a/Foo.java", "/p/b/Foo.java"))
	session.EXPECT().Entries(m.AdditionalPanel).Return(nil)
	session.EXPECT().ClassOnly(m.ProjectPanel).Return(true)
	session.EXPECT().ClassOnly(m.AdditionalPanel).Return(false)

	view := model.View()

	for _, want := range []string{"project files (class-only)", "additional files", "a/Foo.java", "b/Foo.java", "(empty)", "g generate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
