package cmd

import (
	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	var printPrompt bool

	var head string

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Assemble the prompt and copy it to the clipboard",
		Long: `Assemble the prompt from the stored head, both section headers and the
content of every selected file, then copy it to the system clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			args := domain.GenerateArgs{Head: head}
			if printPrompt {
				args.Output = cmd.OutOrStdout()
			}

			return w.Generate(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVarP(&printPrompt, "print", "p", false, "write the prompt to stdout instead of the clipboard")
	cmd.Flags().StringVar(&head, "head", "", "use this head text for this prompt only")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
