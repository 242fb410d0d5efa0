package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

// classOnlyCmd represents the class-only command.
var classOnlyCmd = newClassOnlyCmd()

func newClassOnlyCmd() *cobra.Command {
	var additional bool

	cmd := &cobra.Command{
		Use:   "class-only [--additional] on|off",
		Short: "Restrict directory expansion to source and class files",
		Long: `When class-only mode is on, adding a directory keeps only files with a
source or compiled class extension. The setting is stored per list.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[0])
			if err != nil {
				return err
			}

			w, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return w.SetClassOnly(cmd.Context(), domain.ClassOnlyArgs{
				Panel:   panelFor(additional),
				Enabled: enabled,
			})
		},
	}

	cmd.Flags().BoolVarP(&additional, additionalFlagName, "a", false, "change the additional context list")

	return cmd
}

func init() {
	rootCmd.AddCommand(classOnlyCmd)
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q: expected on or off", value)
	}
}
