package ports

import (
	"context"
	"io"

	"go.trai.ch/runway/internal/core/domain"
)

// ToolchainInstaller locates the build driver and bootstraps it when absent.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainInstaller interface {
	// Locate resolves the build driver without installing anything.
	Locate(spec domain.ToolchainSpec) (domain.Toolchain, bool)

	// Ensure resolves the build driver, running the installer once if needed.
	// Installer output is written to out. It returns
	// domain.ErrToolchainUnavailable when the driver is still missing.
	Ensure(ctx context.Context, spec domain.ToolchainSpec, out io.Writer) (domain.Toolchain, error)
}
