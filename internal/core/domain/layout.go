package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".runway"

	// StoreDirName is the name of the build journal directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "runway.yaml"

	// DebugLogFile is the name of the captured build output log.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStatePath returns the state directory relative to the project root.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultStorePath returns the build journal directory relative to the project root.
// It joins .runway and store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}

// DefaultDebugLogPath returns the build output log relative to the project root.
// It joins .runway and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(StateDirName, DebugLogFile)
}
