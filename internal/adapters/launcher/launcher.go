// Package launcher hands the terminal over to the compiled application.
package launcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"go.trai.ch/runway/internal/adapters/shell" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ExecFunc replaces the current process image. It only returns on failure.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Launcher implements ports.Launcher.
type Launcher struct {
	logger  ports.Logger
	exec    ExecFunc
	environ func() []string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithExec overrides the process image replacement. A nil func makes every
// launch spawn a child.
func WithExec(fn ExecFunc) Option {
	return func(l *Launcher) {
		l.exec = fn
	}
}

// WithEnviron overrides the inherited environment.
func WithEnviron(environ func() []string) Option {
	return func(l *Launcher) {
		l.environ = environ
	}
}

// WithStdio overrides the streams a spawned child is attached to.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// New creates a new Launcher.
func New(logger ports.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		logger:  logger,
		exec:    defaultExec,
		environ: os.Environ,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch verifies the artifact and starts it with args. The env fragment is
// layered over the inherited environment. A spawned child outlives ctx: it
// only receives the signals runway itself receives.
func (l *Launcher) Launch(_ context.Context, mode domain.LaunchMode, artifact string, args, env []string) error {
	if err := verify(artifact); err != nil {
		return err
	}

	merged := shell.ResolveEnvironment(l.environ(), env, nil)

	if mode == domain.LaunchSpawn || l.exec == nil {
		return l.spawn(artifact, args, merged)
	}

	argv := append([]string{artifact}, args...)
	if err := l.exec(artifact, argv, merged); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "artifact", artifact)
	}
	return nil
}

func verify(artifact string) error {
	info, err := os.Stat(artifact)
	if err != nil || !info.Mode().IsRegular() {
		return zerr.With(domain.ErrArtifactMissing, "path", artifact)
	}
	if shell.IsExecutable(artifact) != nil {
		return zerr.With(domain.ErrArtifactNotExecutable, "path", artifact)
	}
	return nil
}

// spawn runs the artifact as a child with inherited stdio, forwards
// SIGINT and SIGTERM to it unchanged and waits for it to exit.
func (l *Launcher) spawn(artifact string, args, env []string) error {
	cmd := exec.Command(artifact, args...) //nolint:gosec // Artifact is the verified build output
	cmd.Env = env
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "artifact", artifact)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	done := make(chan struct{})
	var g errgroup.Group

	g.Go(func() error {
		defer close(done)
		return cmd.Wait()
	})

	g.Go(func() error {
		for {
			select {
			case <-done:
				return nil
			case sig := <-signals:
				_ = cmd.Process.Signal(sig)
			}
		}
	})

	return exitStatus(g.Wait())
}

func exitStatus(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return &domain.ExitStatusError{Code: code}
	}
	return zerr.Wrap(err, domain.ErrLaunchFailed.Error())
}
