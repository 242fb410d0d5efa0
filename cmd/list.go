package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show both selection lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.List(cmd.Context())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
