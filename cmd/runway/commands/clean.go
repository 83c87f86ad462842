package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/runway/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove runway state and optionally the build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, _ := cmd.Flags().GetBool("artifacts")
			project, _ := cmd.Flags().GetString("project")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ProjectDir: project,
				Artifacts:  artifacts,
			})
		},
	}

	cmd.Flags().BoolP("artifacts", "a", false, "Also remove the debug and release executables")

	return cmd
}
