package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// ErrNotInteractive is returned by SimpleUI.RunInteractive.
var ErrNotInteractive = errors.New("interactive mode requires a terminal")

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySelection prints the entries of one panel as a table.
func (s *SimpleUI) DisplaySelection(ctx context.Context, panel m.PanelID, entries []m.ResolvedFile, classOnly bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := ""
	if classOnly {
		mode = " (class-only)"
	}

	s.printf("%s files%s\n", panel.Label(), mode)
	s.printf("%s", renderSelectionTable(entries))

	return nil
}

func renderSelectionTable(entries []m.ResolvedFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Name", "Path"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, name := range DisplayNames(entries) {
		table.Append([]string{fmt.Sprintf("%d", i+1), name, entries[i].Identity})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Files %d", len(entries)), ""})

	table.Render()

	return tableBuffer.String()
}

// DisplayBatchSummary prints what a batch added and which references failed.
func (s *SimpleUI) DisplayBatchSummary(ctx context.Context, summary m.BatchSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %d added, %d already selected, %d failed, %d total\n",
		summary.Panel.Label(), summary.Added, summary.Duplicates, summary.Failed(), summary.Total)

	for _, f := range summary.Failures {
		s.printf("  not found: %s\n", f.Reference)
	}

	for _, skipped := range summary.Skipped {
		s.printf("  skipped: %s\n", skipped)
	}

	return nil
}

// DisplayTemplates prints the template names.
func (s *SimpleUI) DisplayTemplates(ctx context.Context, names []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(names) == 0 {
		s.printf("No templates saved.\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Template"})
	table.SetBorder(false)

	for _, name := range names {
		table.Append([]string{name})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayGenerated reports a generated prompt.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, prompt string, copied bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if copied {
		s.printf("Prompt copied to clipboard (%d characters).\n", len(prompt))
	}

	return nil
}

// DisplayMessage prints a single line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", message)

	return nil
}

// RunInteractive is not supported without a terminal.
func (s *SimpleUI) RunInteractive(_ context.Context, _ Session) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
