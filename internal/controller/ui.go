// Package controller provides the presentation layer for promptgen: plain
// table output for scripted use and an interactive terminal UI.
package controller

import (
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// Session is the view of the selection state that the interactive UI drives.
// ApplyBatch must be called from the UI loop.
type Session interface {
	Entries(panel m.PanelID) []m.ResolvedFile
	ClassOnly(panel m.PanelID) bool
	BeginAdd(ctx context.Context, panel m.PanelID, refs []string) (<-chan m.BatchOutcome, error)
	ApplyBatch(ctx context.Context, outcome m.BatchOutcome) (m.BatchSummary, error)
	Remove(ctx context.Context, panel m.PanelID, identity string) error
	ToggleClassOnly(ctx context.Context, panel m.PanelID) (bool, error)
	// Generate assembles the prompt and copies it to the clipboard.
	Generate(ctx context.Context) (string, error)
}

// UI displays selection state and command results.
type UI interface {
	DisplaySelection(ctx context.Context, panel m.PanelID, entries []m.ResolvedFile, classOnly bool) error
	DisplayBatchSummary(ctx context.Context, summary m.BatchSummary) error
	DisplayTemplates(ctx context.Context, names []string) error
	DisplayGenerated(ctx context.Context, prompt string, copied bool) error
	DisplayMessage(ctx context.Context, message string) error
	// RunInteractive blocks until the user leaves the interactive session.
	RunInteractive(ctx context.Context, session Session) error
}

// NewUI returns the TUI when the output is a terminal and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	simple := NewSimpleUI(cmd)
	if !tty {
		return simple
	}

	return NewTUI(simple, cmd.InOrStdin(), cmd.OutOrStdout())
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DisplayNames returns a short name for every entry: the file name, or
// parent/name when several entries share a file name.
func DisplayNames(entries []m.ResolvedFile) []string {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[fileName(e.Identity)]++
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		name := fileName(e.Identity)
		if counts[name] > 1 {
			if parent := parentName(e.Identity); parent != "" {
				name = parent + "/" + name
			}
		}

		names = append(names, name)
	}

	return names
}

func fileName(identity string) string {
	return path.Base(slashed(identity))
}

func parentName(identity string) string {
	dir := path.Dir(slashed(identity))
	if dir == "." || dir == "/" {
		return ""
	}

	return path.Base(dir)
}

func slashed(identity string) string {
	return strings.ReplaceAll(strings.ReplaceAll(identity, `\`, "/"), m.ArchiveSeparator, "/")
}
