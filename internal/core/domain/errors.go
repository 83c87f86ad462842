package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidBuildMode is returned when the mode token is neither debug nor release.
	ErrInvalidBuildMode = zerr.New("invalid build mode, expected 'debug' or 'release'")

	// ErrManifestNotFound is returned when the project has no build manifest.
	ErrManifestNotFound = zerr.New("build manifest not found")

	// ErrConfigReadFailed is returned when runway.yaml exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when runway.yaml is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrInvalidLaunchMode is returned when the configured launch mode is unknown.
	ErrInvalidLaunchMode = zerr.New("invalid launch mode, expected 'exec' or 'spawn'")

	// ErrUnknownHost is returned when no package plan exists for the host.
	ErrUnknownHost = zerr.New("host not recognised, install build dependencies manually")

	// ErrNoElevation is returned when packages need root and no elevation tool exists.
	ErrNoElevation = zerr.New("administrative privileges required but neither sudo nor doas is available")

	// ErrPackageManagerFailed is returned when a package manager invocation exits non-zero.
	ErrPackageManagerFailed = zerr.New("package manager invocation failed")

	// ErrToolchainUnavailable is returned when the build driver is still missing after bootstrap.
	ErrToolchainUnavailable = zerr.New("build toolchain unavailable")

	// ErrInsecureInstallerURL is returned when the installer would be fetched without TLS.
	ErrInsecureInstallerURL = zerr.New("toolchain installer must be fetched over https")

	// ErrInstallerDownloadFailed is returned when the installer script cannot be fetched.
	ErrInstallerDownloadFailed = zerr.New("failed to download toolchain installer")

	// ErrInstallerFailed is returned when the installer script exits non-zero.
	ErrInstallerFailed = zerr.New("toolchain installer failed")

	// ErrBuildFailed is returned when the build driver exits non-zero.
	ErrBuildFailed = zerr.New("build failed")

	// ErrArtifactMissing is returned when the compiled executable does not exist.
	ErrArtifactMissing = zerr.New("artifact not found, build it manually with 'cargo build'")

	// ErrArtifactNotExecutable is returned when the artifact exists but cannot be executed.
	ErrArtifactNotExecutable = zerr.New("artifact is not executable, rebuild it manually with 'cargo build'")

	// ErrLaunchFailed is returned when the process image could not be replaced or spawned.
	ErrLaunchFailed = zerr.New("failed to launch application")

	// ErrStoreCreateFailed is returned when the journal directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build journal directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")
)

// ExitStatusError carries the exit status of a spawned application back to main.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return "application exited with status " + strconv.Itoa(e.Code)
}
