package cmd

import (
	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	var additional bool

	cmd := &cobra.Command{
		Use:     "remove [--additional] IDENTITY_OR_REF...",
		Aliases: []string{"rm"},
		Short:   "Remove files from a selection list",
		Long: `Remove files from a selection list. Files are matched by their full
identity as shown by "promptgen list", by the reference they were added with,
or by a file path relative to the working directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.Remove(cmd.Context(), domain.RemoveArgs{
				Panel: panelFor(additional),
				Keys:  args,
			})
		},
	}

	cmd.Flags().BoolVarP(&additional, additionalFlagName, "a", false, "remove from the additional context list")

	return cmd
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
