package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/adapters/config"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T) *config.FileConfigLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"rmdb\"\nversion = \"0.1.0\"\n")

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Project.Root)
	assert.Equal(t, "rmdb", cfg.Project.Binary)
	assert.Equal(t, domain.LaunchExec, cfg.Launch)
	assert.Equal(t, domain.DefaultRequirements(), cfg.Requirements)
	assert.Equal(t, domain.DefaultToolchainSpec(), cfg.Toolchain)
	assert.Equal(t, domain.MinTerminalWidth, cfg.Terminal.MinWidth)
	assert.Equal(t, domain.MinTerminalHeight, cfg.Terminal.MinHeight)
}

func TestLoad_BinaryName(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{name: "package name", manifest: "[package]\nname = \"store\"\n", want: "store"},
		{name: "first bin target", manifest: "[workspace]\n\n[[bin]]\nname = \"cli\"\n\n[[bin]]\nname = \"srv\"\n", want: "cli"},
		{name: "unparseable", manifest: "[package\n", want: domain.DefaultBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "Cargo.toml"), tt.manifest)

			cfg, err := newLoader(t).Load(root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Project.Binary)
		})
	}
}

func TestLoad_Discovery(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"rmdb\"\n")
	nested := filepath.Join(root, "src", "db")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Project.Root)
}

func TestLoad_NoProject(t *testing.T) {
	dir := t.TempDir()

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Project.Root)
	assert.Equal(t, domain.DefaultBinary, cfg.Project.Binary)
}

func TestLoad_File(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"rmdb\"\n")
	writeFile(t, filepath.Join(root, "runway.yaml"), `
version: "1"
project:
  binary: rmdb-server
  target: /cache/target
requirements:
  - capability: compiler
    tools: [clang]
toolchain:
  installer_args: ["-y"]
terminal:
  min_width: 100
launch:
  mode: spawn
`)

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)

	assert.Equal(t, "rmdb-server", cfg.Project.Binary)
	assert.Equal(t, "/cache/target", cfg.Project.TargetDir)
	assert.Equal(t, domain.DefaultManifest, cfg.Project.Manifest)
	assert.Equal(t, root, cfg.Project.Root)
	assert.Equal(t, []domain.Requirement{{Capability: domain.CapabilityCompiler, Tools: []string{"clang"}}}, cfg.Requirements)
	assert.Equal(t, domain.DefaultDriver, cfg.Toolchain.Driver)
	assert.Equal(t, []string{"-y"}, cfg.Toolchain.InstallerArgs)
	assert.Equal(t, 100, cfg.Terminal.MinWidth)
	assert.Equal(t, domain.MinTerminalHeight, cfg.Terminal.MinHeight)
	assert.Equal(t, domain.LaunchSpawn, cfg.Launch)
}

func TestLoad_FileWithoutBinaryUsesManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"kv\"\n")
	writeFile(t, filepath.Join(root, "runway.yaml"), "launch:\n  mode: exec\n")

	cfg, err := newLoader(t).Load(root)
	require.NoError(t, err)
	assert.Equal(t, "kv", cfg.Project.Binary)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "project: [", wantErr: domain.ErrConfigParseFailed},
		{name: "invalid launch mode", content: "launch:\n  mode: fork\n", wantErr: domain.ErrInvalidLaunchMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "runway.yaml"), tt.content)

			_, err := newLoader(t).Load(root)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
