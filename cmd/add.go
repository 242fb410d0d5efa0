package cmd

import (
	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	var additional, classOnly bool

	cmd := &cobra.Command{
		Use:   "add [--additional] [--class-only] REF...",
		Short: "Add files to a selection list",
		Long:  addLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.Add(cmd.Context(), domain.AddArgs{
				Panel:      panelFor(additional),
				References: args,
				ClassOnly:  classOnly,
			})
		},
	}

	cmd.Flags().BoolVarP(&additional, additionalFlagName, "a", false, "add to the additional context list instead of the project list")
	cmd.Flags().BoolVar(&classOnly, "class-only", false, "enable class-only mode for the list before adding")

	return cmd
}

func init() {
	rootCmd.AddCommand(addCmd)
}
