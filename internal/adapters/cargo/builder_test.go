package cargo_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/adapters/cargo"
	"go.trai.ch/runway/internal/adapters/fs"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCommand(t *testing.T) {
	p := domain.DefaultProject("/work/rmdb")

	debug := cargo.Command(p, domain.ModeDebug, "cargo")
	assert.Equal(t, []string{"cargo", "build", "--manifest-path", "/work/rmdb/Cargo.toml"}, debug.Argv())
	assert.Equal(t, "/work/rmdb", debug.Dir)

	release := cargo.Command(p, domain.ModeRelease, "/home/u/.cargo/bin/cargo")
	assert.Equal(t,
		[]string{"/home/u/.cargo/bin/cargo", "build", "--release", "--manifest-path", "/work/rmdb/Cargo.toml"},
		release.Argv())
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	root := t.TempDir()
	p := domain.DefaultProject(root)
	artifact := p.ArtifactPath(domain.ModeRelease)
	stale := time.Now().Add(-time.Hour)
	now := time.Now().Truncate(time.Second)

	tc := domain.Toolchain{Driver: "/opt/cargo/bin/cargo", Path: domain.ToolPath{Dirs: []string{"/opt/cargo/bin"}}}

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), []string{"PATH=/opt/cargo/bin"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string, stdout, _ io.Writer) error {
			assert.Equal(t, "/opt/cargo/bin/cargo", cmd.Name)
			assert.Contains(t, cmd.Args, "--release")
			_, _ = io.WriteString(stdout, "   Compiling rmdb v0.1.0\n")
			require.NoError(t, os.MkdirAll(filepath.Dir(artifact), 0o750))
			require.NoError(t, os.WriteFile(artifact, []byte("bin"), 0o700))
			return os.Chtimes(artifact, stale, stale)
		})

	var out bytes.Buffer
	b := cargo.New(executor, fs.NewHasher(), cargo.WithClock(func() time.Time { return now }))
	art, err := b.Build(context.Background(), p, domain.ModeRelease, tc, &out)
	require.NoError(t, err)

	assert.True(t, art.Exists)
	assert.Equal(t, artifact, art.Path)
	assert.NotEmpty(t, art.Digest)
	assert.Contains(t, out.String(), "Compiling rmdb")

	info, err := os.Stat(artifact)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(now))

	logged, err := os.ReadFile(filepath.Join(root, ".runway", "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Compiling rmdb")
}

func TestBuilder_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 101"))

	p := domain.DefaultProject(t.TempDir())
	_, err := cargo.New(executor, fs.NewHasher()).Build(context.Background(), p, domain.ModeDebug, domain.Toolchain{}, io.Discard)
	require.ErrorContains(t, err, domain.ErrBuildFailed.Error())
	assert.ErrorContains(t, err, "exit status 101")
}

func TestBuilder_ArtifactMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	p := domain.DefaultProject(t.TempDir())
	_, err := cargo.New(executor, fs.NewHasher()).Build(context.Background(), p, domain.ModeDebug, domain.Toolchain{}, nil)
	require.ErrorContains(t, err, domain.ErrArtifactMissing.Error())
}
