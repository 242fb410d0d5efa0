package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

var errNoPromptText = errors.New("nothing to update: pass a head text or a header flag")

// headCmd represents the head command.
var headCmd = newHeadCmd()

func newHeadCmd() *cobra.Command {
	var projectHeader, additionalHeader string

	cmd := &cobra.Command{
		Use:   "head [TEXT]",
		Short: "Set the prompt head and section headers",
		Long: `Store the text placed at the top of every prompt. The section headers
printed above the project files and the additional context can be changed
with --project-header and --additional-header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := domain.HeadArgs{
				ProjectHeader:    projectHeader,
				AdditionalHeader: additionalHeader,
			}
			if len(args) == 1 {
				texts.Head = args[0]
			}

			if texts == (domain.HeadArgs{}) {
				return errNoPromptText
			}

			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.SetHead(cmd.Context(), texts)
		},
	}

	cmd.Flags().StringVar(&projectHeader, "project-header", "", "header printed above the project files")
	cmd.Flags().StringVar(&additionalHeader, "additional-header", "", "header printed above the additional context")

	return cmd
}

func init() {
	rootCmd.AddCommand(headCmd)
}
