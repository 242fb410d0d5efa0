package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	activeStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const helpLine = "tab switch • a add • d remove • c class-only • g generate • q quit"

// TUI implements UI with an interactive Bubble Tea session. Non-interactive
// output is delegated to SimpleUI.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(simple *SimpleUI, input io.Reader, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, input: input, output: output}
}

// RunInteractive runs the two-panel selection editor until the user quits.
func (t *TUI) RunInteractive(ctx context.Context, session Session) error {
	model := newInteractiveModel(ctx, session)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

// batchDoneMsg carries a finished compute phase back to the UI loop.
type batchDoneMsg struct {
	outcome m.BatchOutcome
}

type interactiveModel struct {
	ctx     context.Context
	session Session
	active  int
	cursor  map[m.PanelID]int
	input   textinput.Model
	adding  bool
	status  string
	failed  bool
	width   int
	height  int
}

func newInteractiveModel(ctx context.Context, session Session) interactiveModel {
	input := textinput.New()
	input.Placeholder = "path, directory, archive!/entry or classpath:com.example.Name"
	input.CharLimit = 4096

	return interactiveModel{
		ctx:     ctx,
		session: session,
		cursor:  make(map[m.PanelID]int),
		input:   input,
	}
}

func (im interactiveModel) Init() tea.Cmd {
	return nil
}

func (im interactiveModel) panel() m.PanelID {
	return m.Panels[im.active]
}

func (im interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.width = msg.Width
		im.height = msg.Height

		return im, nil
	case batchDoneMsg:
		return im.applyBatch(msg.outcome), nil
	case tea.KeyMsg:
		if im.adding {
			return im.handleInputKey(msg)
		}

		return im.handleKeyPress(msg)
	}

	return im, nil
}

func (im interactiveModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return im, tea.Quit
	case "tab":
		im.active = (im.active + 1) % len(m.Panels)
	case "up", "k":
		if im.cursor[im.panel()] > 0 {
			im.cursor[im.panel()]--
		}
	case "down", "j":
		if im.cursor[im.panel()] < len(im.session.Entries(im.panel()))-1 {
			im.cursor[im.panel()]++
		}
	case "a":
		im.adding = true
		im.input.SetValue("")
		focus := im.input.Focus()

		return im, focus
	case "d":
		return im.removeSelected(), nil
	case "c":
		on, err := im.session.ToggleClassOnly(im.ctx, im.panel())
		if err != nil {
			return im.setError(err), nil
		}

		im = im.setStatus(fmt.Sprintf("class-only %s for %s files", onOff(on), im.panel().Label()))
	case "g":
		prompt, err := im.session.Generate(im.ctx)
		if err != nil {
			return im.setError(err), nil
		}

		im = im.setStatus(fmt.Sprintf("Prompt copied to clipboard (%d characters)", len(prompt)))
	}

	return im, nil
}

func (im interactiveModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		im.adding = false
		im.input.Blur()

		return im, nil
	case tea.KeyEnter:
		im.adding = false
		im.input.Blur()

		refs := strings.Fields(im.input.Value())
		if len(refs) == 0 {
			return im, nil
		}

		out, err := im.session.BeginAdd(im.ctx, im.panel(), refs)
		if err != nil {
			return im.setError(err), nil
		}

		im = im.setStatus(fmt.Sprintf("Resolving %d reference(s)...", len(refs)))

		return im, waitForBatch(out)
	}

	var cmd tea.Cmd
	im.input, cmd = im.input.Update(msg)

	return im, cmd
}

func waitForBatch(out <-chan m.BatchOutcome) tea.Cmd {
	return func() tea.Msg {
		return batchDoneMsg{outcome: <-out}
	}
}

func (im interactiveModel) applyBatch(outcome m.BatchOutcome) interactiveModel {
	summary, err := im.session.ApplyBatch(im.ctx, outcome)
	if err != nil {
		return im.setError(err)
	}

	return im.setStatus(fmt.Sprintf("%s: %d added, %d already selected, %d failed",
		summary.Panel.Label(), summary.Added, summary.Duplicates, summary.Failed()))
}

func (im interactiveModel) removeSelected() interactiveModel {
	panel := im.panel()
	entries := im.session.Entries(panel)

	pos := im.cursor[panel]
	if pos >= len(entries) {
		return im
	}

	if err := im.session.Remove(im.ctx, panel, entries[pos].Identity); err != nil {
		return im.setError(err)
	}

	if pos > 0 && pos >= len(entries)-1 {
		im.cursor[panel] = pos - 1
	}

	return im.setStatus("Removed " + fileName(entries[pos].Identity))
}

func (im interactiveModel) setStatus(status string) interactiveModel {
	im.status = status
	im.failed = false

	return im
}

func (im interactiveModel) setError(err error) interactiveModel {
	im.status = err.Error()
	im.failed = true

	return im
}

func (im interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("promptgen") + "\n\n")

	panels := make([]string, 0, len(m.Panels))
	for i, panel := range m.Panels {
		panels = append(panels, im.renderPanel(panel, i == im.active))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")

	if im.adding {
		b.WriteString("Add to " + im.panel().Label() + ": " + im.input.View() + "\n")
	}

	if im.status != "" {
		style := mutedStyle
		if im.failed {
			style = errorStyle
		}

		b.WriteString(style.Render(im.status) + "\n")
	}

	b.WriteString(mutedStyle.Render(helpLine) + "\n")

	return b.String()
}

func (im interactiveModel) renderPanel(panel m.PanelID, active bool) string {
	var b strings.Builder

	header := panel.Label() + " files"
	if im.session.ClassOnly(panel) {
		header += " (class-only)"
	}

	b.WriteString(titleStyle.Render(header) + "\n")

	entries := im.session.Entries(panel)
	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("(empty)"))
	}

	for i, name := range DisplayNames(entries) {
		if i > 0 {
			b.WriteString("\n")
		}

		if active && i == im.cursor[panel] {
			b.WriteString(cursorStyle.Render("> " + name))
			continue
		}

		b.WriteString("  " + name)
	}

	style := inactiveStyle
	if active {
		style = activeStyle
	}

	if im.width > 0 {
		style = style.Width(im.width/len(m.Panels) - 4)
	}

	return style.Render(b.String())
}

func onOff(on bool) string {
	if on {
		return "on"
	}

	return "off"
}
