// Package shell provides a process executor for running external commands.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithStdio overrides the streams interactive commands are attached to.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the command in a pseudo-terminal so that tools keep their
// colored, line-buffered output, copying everything to stdout. When no
// pseudo-terminal can be allocated it falls back to plain pipes.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, env []string, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Name == "" {
		return nil
	}

	proc, err := startPTY(ctx, cmd, env, stdout)
	if err != nil {
		c := newCmd(ctx, cmd, env)
		c.Stdout = stdout
		c.Stderr = stderr
		if startErr := c.Start(); startErr != nil {
			return zerr.With(zerr.Wrap(startErr, "failed to start command"), "command", cmd.Name)
		}
		proc = &pipeProcess{cmd: c}
	}

	return commandError(cmd, proc.Wait())
}

// Interact runs the command attached to the executor's own terminal streams.
func (e *Executor) Interact(ctx context.Context, cmd *domain.Command, env []string) error {
	if cmd == nil || cmd.Name == "" {
		return nil
	}

	e.logger.Info("running " + strings.Join(cmd.Argv(), " "))

	c := newCmd(ctx, cmd, env)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	return commandError(cmd, c.Run())
}

func newCmd(ctx context.Context, cmd *domain.Command, env []string) *exec.Cmd {
	cmdEnv := ResolveEnvironment(os.Environ(), env, cmd.Environment)

	executable := cmd.Name
	if !strings.ContainsRune(cmd.Name, os.PathSeparator) {
		if lp, err := LookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands come from static plans
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = cmdEnv
	return c
}

func commandError(cmd *domain.Command, err error) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	return zerr.With(wrapped, "command", cmd.Name)
}

type process interface {
	Wait() error
}

type pipeProcess struct {
	cmd *exec.Cmd
}

func (p *pipeProcess) Wait() error {
	return p.cmd.Wait()
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()
	// The copy loop ends once the child side of the terminal is closed.
	<-p.ioDone
	return err
}

func startPTY(ctx context.Context, cmd *domain.Command, env []string, stdout io.Writer) (process, error) {
	c := newCmd(ctx, cmd, env)

	ptmx, err := pty.Start(c)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		_, _ = io.Copy(stdout, ptmx)
	}()

	return &ptyProcess{cmd: c, ioDone: ioDone}, nil
}
