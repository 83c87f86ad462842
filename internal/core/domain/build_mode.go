package domain

import "go.trai.ch/zerr"

// BuildMode selects the compilation profile.
type BuildMode string

// Supported build modes.
const (
	ModeDebug   BuildMode = "debug"
	ModeRelease BuildMode = "release"
)

// DefaultMode is used when no mode token is given.
const DefaultMode = ModeDebug

// ParseBuildMode parses a mode token. An empty token selects DefaultMode.
func ParseBuildMode(s string) (BuildMode, error) {
	switch BuildMode(s) {
	case "":
		return DefaultMode, nil
	case ModeDebug, ModeRelease:
		return BuildMode(s), nil
	default:
		return "", zerr.With(ErrInvalidBuildMode, "mode", s)
	}
}

// Flags returns the extra build-driver flags for the mode.
func (m BuildMode) Flags() []string {
	if m == ModeRelease {
		return []string{"--release"}
	}
	return nil
}

// Dir returns the artifact subdirectory for the mode.
func (m BuildMode) Dir() string {
	if m == "" {
		return string(DefaultMode)
	}
	return string(m)
}

func (m BuildMode) String() string {
	return m.Dir()
}

// RunRequest is the parsed invocation of the orchestrator.
type RunRequest struct {
	Mode         BuildMode
	ForceRebuild bool
	// Args are passed unchanged to the launched application.
	Args []string
}
