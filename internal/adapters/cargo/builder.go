// Package cargo invokes the build driver to compile the application.
package cargo

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
)

// Digester computes content digests of files.
type Digester interface {
	Digest(path string) (string, error)
}

// Builder implements ports.Builder by running "cargo build".
type Builder struct {
	executor ports.Executor
	digester Digester
	now      func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock overrides the time source used to bump the artifact.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// New creates a new Builder.
func New(executor ports.Executor, digester Digester, opts ...Option) *Builder {
	b := &Builder{
		executor: executor,
		digester: digester,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Command returns the build invocation for project in mode.
func Command(project domain.Project, mode domain.BuildMode, driver string) *domain.Command {
	args := append([]string{"build"}, mode.Flags()...)
	args = append(args, "--manifest-path", project.ManifestPath())
	return &domain.Command{
		Name: driver,
		Args: args,
		Dir:  project.Root,
	}
}

// Build compiles the project and returns the freshly touched artifact.
// Output is copied to out and to the project's debug log.
func (b *Builder) Build(
	ctx context.Context,
	project domain.Project,
	mode domain.BuildMode,
	tc domain.Toolchain,
	out io.Writer,
) (domain.Artifact, error) {
	driver := tc.Driver
	if driver == "" {
		driver = domain.DefaultDriver
	}

	sink, closeLog := b.openLog(project, out)
	defer closeLog()

	cmd := Command(project, mode, driver)
	if err := b.executor.Execute(ctx, cmd, tc.Path.Env(), sink, sink); err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "mode", mode.Dir())
	}

	path := project.ArtifactPath(mode)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return domain.Artifact{}, zerr.With(domain.ErrArtifactMissing, "path", path)
	}

	// Cargo leaves the artifact untouched when nothing needed relinking, so
	// bump it to keep it newer than every input.
	now := b.now()
	if err := os.Chtimes(path, now, now); err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, "failed to update artifact timestamp"), "path", path)
	}

	art := domain.Artifact{Path: path, ModTime: now, Exists: true}
	if b.digester != nil {
		digest, err := b.digester.Digest(path)
		if err != nil {
			return domain.Artifact{}, err
		}
		art.Digest = digest
	}
	return art, nil
}

// openLog tees build output into .runway/debug.log. The log is best effort;
// when it cannot be opened output only goes to out.
func (b *Builder) openLog(project domain.Project, out io.Writer) (io.Writer, func()) {
	if out == nil {
		out = io.Discard
	}

	path := filepath.Join(project.Root, domain.DefaultDebugLogPath())
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return out, func() {}
	}
	//nolint:gosec // Path is derived from the project root
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return out, func() {}
	}
	return io.MultiWriter(out, f), func() { _ = f.Close() }
}
