package domain

import (
	"path/filepath"
	"time"
)

// Default project layout of the launched application.
const (
	DefaultManifest  = "Cargo.toml"
	DefaultLockFile  = "Cargo.lock"
	DefaultSourceDir = "src"
	DefaultTargetDir = "target"
	DefaultBinary    = "rmdb"
)

// Project describes where the build inputs and outputs live.
type Project struct {
	Root      string `yaml:"-"`
	Manifest  string `yaml:"manifest"`
	LockFile  string `yaml:"lockfile"`
	SourceDir string `yaml:"source"`
	TargetDir string `yaml:"target"`
	Binary    string `yaml:"binary"`
}

// DefaultProject returns the layout of a standard cargo project rooted at root.
func DefaultProject(root string) Project {
	return Project{
		Root:      root,
		Manifest:  DefaultManifest,
		LockFile:  DefaultLockFile,
		SourceDir: DefaultSourceDir,
		TargetDir: DefaultTargetDir,
		Binary:    DefaultBinary,
	}
}

// ManifestPath returns the absolute path of the build manifest.
func (p Project) ManifestPath() string {
	return p.resolve(p.Manifest)
}

// LockPath returns the path of the lock file, or "" if none is configured.
func (p Project) LockPath() string {
	if p.LockFile == "" {
		return ""
	}
	return p.resolve(p.LockFile)
}

// SourcePath returns the root of the source tree.
func (p Project) SourcePath() string {
	return p.resolve(p.SourceDir)
}

// ArtifactPath returns the location of the compiled executable for mode.
func (p Project) ArtifactPath(mode BuildMode) string {
	return filepath.Join(p.resolve(p.TargetDir), mode.Dir(), p.Binary)
}

func (p Project) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Root, name)
}

// Artifact is the observed state of the compiled executable.
type Artifact struct {
	Path    string
	ModTime time.Time
	Exists  bool
	// Digest is the content hash, set only by a fresh build.
	Digest string
}

// Decision is the outcome of the staleness check.
type Decision struct {
	Rebuild bool
	Reason  string
	// Trigger is the input that caused the rebuild, if any.
	Trigger string
}
