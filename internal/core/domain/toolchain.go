package domain

import (
	"os"
	"strings"
	"time"
)

// ToolPath is the set of directories the toolchain descriptor adds to the
// search path. It is passed explicitly to later stages rather than written
// into the process environment.
type ToolPath struct {
	Dirs []string
}

// Env renders the tool path as an environment fragment. Executors prepend it
// to the inherited PATH.
func (t ToolPath) Env() []string {
	if len(t.Dirs) == 0 {
		return nil
	}
	return []string{"PATH=" + strings.Join(t.Dirs, string(os.PathListSeparator))}
}

// Toolchain is a resolved build driver.
type Toolchain struct {
	// Driver is the absolute path of the build driver executable.
	Driver string
	Path   ToolPath
	// Installed is set when this run bootstrapped the toolchain.
	Installed bool
}

// ToolchainSpec configures how the build driver is located and bootstrapped.
type ToolchainSpec struct {
	Driver        string   `yaml:"driver"`
	Descriptor    string   `yaml:"descriptor"`
	InstallerURL  string   `yaml:"installer_url"`
	InstallerArgs []string `yaml:"installer_args"`
}

// Default toolchain bootstrap settings.
const (
	DefaultDriver       = "cargo"
	DefaultInstallerURL = "https://sh.rustup.rs"
)

// DefaultToolchainSpec returns the rustup based bootstrap settings.
func DefaultToolchainSpec() ToolchainSpec {
	return ToolchainSpec{
		Driver:        DefaultDriver,
		InstallerURL:  DefaultInstallerURL,
		InstallerArgs: []string{"-y", "--default-toolchain", "stable", "--profile", "minimal"},
	}
}

// BuildRecord describes the last successful build of a mode. It is
// informational only and never decides staleness.
type BuildRecord struct {
	Mode     BuildMode     `json:"mode"`
	Artifact string        `json:"artifact"`
	Digest   string        `json:"digest"`
	Host     string        `json:"host"`
	BuiltAt  time.Time     `json:"built_at"`
	Duration time.Duration `json:"duration"`
}
