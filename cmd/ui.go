package cmd

import (
	"github.com/spf13/cobra"
)

// uiCmd represents the ui command.
var uiCmd = newUICmd()

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Edit both selection lists interactively",
		Long: `Open a terminal UI with the project and additional lists side by side.
Keys: tab switch list, a add, d remove, c toggle class-only, g generate, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.Interactive(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
