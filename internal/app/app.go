// Package app implements the application layer for runway.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/runway/internal/adapters/linear"    //nolint:depguard // Renderer is chosen per run
	"go.trai.ch/runway/internal/adapters/telemetry" //nolint:depguard // Tracer is bound per run
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/runway/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	deps         pipeline.Deps
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance. deps.Tracer is replaced on every run.
func New(loader ports.ConfigLoader, deps pipeline.Deps, log ports.Logger) *App {
	deps.Logger = log
	return &App{
		configLoader: loader,
		deps:         deps,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput overrides the streams stage progress and reports are written to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Mode       domain.BuildMode
	Force      bool
	ProjectDir string
	Args       []string
}

// Run bootstraps the host, builds the application if needed and launches
// it. A user declining to launch is not an error.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.load(opts.ProjectDir)
	if err != nil {
		return err
	}

	renderer := linear.NewRenderer(a.stdout, a.stderr)
	shutdown := telemetry.Setup(renderer)

	deps := a.deps
	deps.Tracer = telemetry.NewOTelTracer("runway").WithRenderer(renderer)
	p := pipeline.New(deps)

	req := domain.RunRequest{Mode: opts.Mode, ForceRebuild: opts.Force, Args: opts.Args}
	prepared, err := p.Prepare(ctx, cfg, req)

	// Flush stage output before the application takes over the terminal.
	if shutdownErr := shutdown(context.WithoutCancel(ctx)); shutdownErr != nil && err == nil {
		a.logger.Warn("failed to flush progress output: " + shutdownErr.Error())
	}
	if err != nil {
		return err
	}

	return p.Launch(ctx, prepared)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ProjectDir string
	Artifacts  bool
}

// Clean removes runway's state directory and optionally the build artifacts.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.load(options.ProjectDir)
	if err != nil {
		return err
	}

	var errs error
	remove := func(path string, name string) {
		if _, statErr := os.Lstat(path); errors.Is(statErr, os.ErrNotExist) {
			return
		}
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	root := cfg.Project.Root
	remove(rootPath(root, domain.DefaultStatePath()), "runway state")

	if options.Artifacts {
		for _, mode := range []domain.BuildMode{domain.ModeDebug, domain.ModeRelease} {
			remove(cfg.Project.ArtifactPath(mode), mode.Dir()+" artifact")
		}
	}

	return errs
}

func (a *App) load(dir string) (*domain.Config, error) {
	if dir == "" {
		dir = "."
	}
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
