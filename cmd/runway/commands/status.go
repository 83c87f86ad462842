package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/runway/internal/app"
	"go.trai.ch/runway/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [debug|release]",
		Short: "Show host, toolchain and artifact state without changing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			}
			mode, err := domain.ParseBuildMode(token)
			if err != nil {
				return err
			}
			project, _ := cmd.Flags().GetString("project")

			report, err := c.app.Status(cmd.Context(), app.StatusOptions{
				Mode:       mode,
				ProjectDir: project,
			})
			if err != nil {
				return err
			}
			return c.app.PrintStatus(report)
		},
	}
}
