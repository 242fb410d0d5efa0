package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

// templateCmd represents the template command group.
var templateCmd = newTemplateCmd()

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tpl"},
		Short:   "Save and restore named prompt configurations",
		Long: `A template stores the prompt head, both section headers and both
reference lists under a name. Loading a template replaces the current
configuration and resolves its references again.`,
	}

	cmd.AddCommand(
		newTemplateNameCmd("save NAME", "Save the current configuration as a template",
			func(w domain.Workflow) templateAction { return w.SaveTemplate }),
		newTemplateNameCmd("load NAME", "Replace the current configuration with a template",
			func(w domain.Workflow) templateAction { return w.LoadTemplate }),
		newTemplateNameCmd("delete NAME", "Delete a template",
			func(w domain.Workflow) templateAction { return w.DeleteTemplate }),
		newTemplateListCmd(),
	)

	return cmd
}

type templateAction = func(ctx context.Context, args domain.TemplateArgs) error

func newTemplateNameCmd(use, short string, action func(w domain.Workflow) templateAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return action(w)(cmd.Context(), domain.TemplateArgs{Name: args[0]})
		},
	}
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.ListTemplates(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
