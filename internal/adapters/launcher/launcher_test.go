//go:build unix

package launcher_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/adapters/launcher"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeArtifact(t *testing.T, script string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rmdb")
	require.NoError(t, os.WriteFile(path, []byte(script), perm))
	return path
}

func TestLaunch_Exec(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	artifact := writeArtifact(t, "#!/bin/sh\n", 0o700)

	var gotArgv0 string
	var gotArgv, gotEnv []string
	l := launcher.New(log,
		launcher.WithEnviron(func() []string { return []string{"PATH=/usr/bin", "HOME=/home/u"} }),
		launcher.WithExec(func(argv0 string, argv, envv []string) error {
			gotArgv0, gotArgv, gotEnv = argv0, argv, envv
			return nil
		}))

	err := l.Launch(context.Background(), domain.LaunchExec, artifact, []string{"--db", "x"}, []string{"PATH=/opt/cargo/bin"})
	require.NoError(t, err)

	assert.Equal(t, artifact, gotArgv0)
	assert.Equal(t, []string{artifact, "--db", "x"}, gotArgv)
	assert.Contains(t, gotEnv, "HOME=/home/u")
	assert.Contains(t, gotEnv, "PATH=/opt/cargo/bin:/usr/bin")
}

func TestLaunch_ExecFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	artifact := writeArtifact(t, "#!/bin/sh\n", 0o700)

	l := launcher.New(log, launcher.WithExec(func(string, []string, []string) error {
		return errors.New("exec format error")
	}))

	err := l.Launch(context.Background(), domain.LaunchExec, artifact, nil, nil)
	require.ErrorContains(t, err, domain.ErrLaunchFailed.Error())
}

func TestLaunch_Spawn(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	artifact := writeArtifact(t, "#!/bin/sh\necho \"hello $1 $RMDB_MODE\"\n", 0o700)

	var stdout bytes.Buffer
	l := launcher.New(log,
		launcher.WithEnviron(func() []string { return append(os.Environ(), "RMDB_MODE=test") }),
		launcher.WithExec(func(string, []string, []string) error {
			t.Fatal("exec must not be used in spawn mode")
			return nil
		}),
		launcher.WithStdio(strings.NewReader(""), &stdout, &bytes.Buffer{}))

	err := l.Launch(context.Background(), domain.LaunchSpawn, artifact, []string{"world"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world test\n", stdout.String())
}

func TestLaunch_SpawnExitStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	artifact := writeArtifact(t, "#!/bin/sh\nexit 3\n", 0o700)

	l := launcher.New(log,
		launcher.WithExec(nil),
		launcher.WithStdio(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))

	err := l.Launch(context.Background(), domain.LaunchExec, artifact, nil, nil)
	var status *domain.ExitStatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 3, status.Code)
}

func TestLaunch_SpawnIgnoresCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	artifact := writeArtifact(t,
		"#!/bin/sh\ntrap 'echo got-INT' INT\ntrap 'echo got-TERM; exit 7' TERM\nsleep 0.2\necho done\n", 0o700)

	var stdout bytes.Buffer
	l := launcher.New(log,
		launcher.WithExec(nil),
		launcher.WithStdio(strings.NewReader(""), &stdout, &bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Launch(ctx, domain.LaunchSpawn, artifact, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "done\n", stdout.String())
}

func TestLaunch_Verify(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "rmdb") },
			wantErr: domain.ErrArtifactMissing,
		},
		{
			name:    "directory",
			path:    func(t *testing.T) string { return t.TempDir() },
			wantErr: domain.ErrArtifactMissing,
		},
		{
			name:    "not executable",
			path:    func(t *testing.T) string { return writeArtifact(t, "#!/bin/sh\n", 0o600) },
			wantErr: domain.ErrArtifactNotExecutable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			l := launcher.New(log, launcher.WithExec(func(string, []string, []string) error {
				t.Fatal("unverified artifact must not be launched")
				return nil
			}))

			err := l.Launch(context.Background(), domain.LaunchExec, tt.path(t), nil, nil)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
