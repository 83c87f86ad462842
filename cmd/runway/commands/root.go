// Package commands implements the CLI commands for runway.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/runway/internal/app"
	"go.trai.ch/runway/internal/build"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/zerr"
)

// Log formats accepted by --log-format.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// CLI represents the command line interface for runway.
type CLI struct {
	app     Application
	logger  any
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Status(ctx context.Context, opts app.StatusOptions) (*app.StatusReport, error)
	PrintStatus(report *app.StatusReport) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logger may be nil; when
// it supports JSON output it honours --log-format.
func New(a Application, logger any) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "runway [debug|release] [-f|--force] [-- args...]",
		Short: "Bootstrap, build and launch rmdb from a fresh checkout",
		Long: "runway prepares the host for building the application, installs the toolchain\n" +
			"when it is missing, rebuilds only when sources changed and hands the terminal\n" +
			"over to the compiled binary. Arguments after -- are passed to the application.",
		Args:              modeArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyLogFormat,
		RunE:              c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("force", "f", false, "Rebuild even when the artifact is up to date")
	rootCmd.PersistentFlags().StringP("project", "C", ".", "Project directory")
	rootCmd.PersistentFlags().String("log-format", LogFormatPretty, "Log format: pretty or json")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	positional, passthrough := splitAtDash(cmd, args)

	var token string
	if len(positional) == 1 {
		token = positional[0]
	}
	mode, err := domain.ParseBuildMode(token)
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	project, _ := cmd.Flags().GetString("project")

	return c.app.Run(cmd.Context(), app.RunOptions{
		Mode:       mode,
		Force:      force,
		ProjectDir: project,
		Args:       passthrough,
	})
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case LogFormatPretty:
		return nil
	case LogFormatJSON:
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
		return nil
	default:
		return zerr.With(zerr.New("invalid log format, expected 'pretty' or 'json'"), "format", format)
	}
}

// modeArgs accepts at most one build mode before "--" and anything after it.
func modeArgs(cmd *cobra.Command, args []string) error {
	positional, _ := splitAtDash(cmd, args)
	if len(positional) > 1 {
		return zerr.With(zerr.New("accepts at most one build mode"), "args", positional)
	}
	return nil
}

func splitAtDash(cmd *cobra.Command, args []string) (positional, passthrough []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
