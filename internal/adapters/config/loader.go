// Package config provides the configuration loader for runway.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using an optional YAML file
// and the project's build manifest.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a loader for runway.yaml.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName, logger: log}
}

// Load resolves the configuration for the project containing dir.
//
// The project root is the nearest directory at or above dir that holds
// runway.yaml or the default manifest. If neither is found dir itself is the
// root and the manifest check later reports the missing manifest.
func (l *FileConfigLoader) Load(dir string) (*domain.Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", dir)
	}

	root, cfgPath := l.discover(abs)
	cfg := domain.DefaultConfig(root)

	if cfgPath != "" {
		if err := l.apply(cfg, cfgPath); err != nil {
			return nil, err
		}
	}

	if cfg.Project.Binary == "" {
		cfg.Project.Binary = l.binaryName(cfg.Project)
	}

	return cfg, nil
}

// discover walks up from dir and returns the project root together with the
// configuration file path, which is empty when none exists.
func (l *FileConfigLoader) discover(dir string) (root, cfgPath string) {
	for current := dir; ; {
		candidate := filepath.Join(current, l.Filename)
		if exists(candidate) {
			return current, candidate
		}
		if exists(filepath.Join(current, domain.DefaultManifest)) {
			return current, ""
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir, ""
		}
		current = parent
	}
}

func (l *FileConfigLoader) apply(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered below the user's project
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file := Runwayfile{
		Project:      cfg.Project,
		Requirements: cfg.Requirements,
		Toolchain:    cfg.Toolchain,
		Terminal:     cfg.Terminal,
		Launch:       LaunchDTO{Mode: string(cfg.Launch)},
	}
	// The binary name is left empty so an unset value falls back to the
	// manifest.
	file.Project.Binary = ""

	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	mode := domain.LaunchMode(file.Launch.Mode)
	if mode != domain.LaunchExec && mode != domain.LaunchSpawn {
		return zerr.With(zerr.With(domain.ErrInvalidLaunchMode, "mode", file.Launch.Mode), "path", path)
	}

	file.Project.Root = cfg.Project.Root
	cfg.Project = file.Project
	cfg.Requirements = file.Requirements
	cfg.Toolchain = file.Toolchain
	cfg.Launch = mode

	if file.Terminal.MinWidth > 0 {
		cfg.Terminal.MinWidth = file.Terminal.MinWidth
	}
	if file.Terminal.MinHeight > 0 {
		cfg.Terminal.MinHeight = file.Terminal.MinHeight
	}

	return nil
}

// binaryName reads the executable name from the manifest. The package name
// wins over [[bin]] targets. Unreadable manifests fall back to the default.
func (l *FileConfigLoader) binaryName(project domain.Project) string {
	path := project.ManifestPath()
	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && l.logger != nil {
			l.logger.Warn("could not read binary name from " + path + ", using " + domain.DefaultBinary)
		}
		return domain.DefaultBinary
	}

	if manifest.Package.Name != "" {
		return manifest.Package.Name
	}
	for _, bin := range manifest.Bin {
		if bin.Name != "" {
			return bin.Name
		}
	}
	return domain.DefaultBinary
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
