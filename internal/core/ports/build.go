package ports

import (
	"context"
	"io"

	"go.trai.ch/runway/internal/core/domain"
)

// StalenessChecker decides whether the artifact must be rebuilt.
//
//go:generate mockgen -source=build.go -destination=mocks/mock_build.go -package=mocks
type StalenessChecker interface {
	// NeedsRebuild evaluates the staleness predicate from the filesystem. It
	// keeps no state between calls.
	NeedsRebuild(req domain.RunRequest, project domain.Project) domain.Decision

	// Inspect reports the observed state of the artifact for mode.
	Inspect(project domain.Project, mode domain.BuildMode) domain.Artifact
}

// Builder invokes the build driver.
type Builder interface {
	// Build compiles the project in the given mode and returns the resulting
	// artifact. Output is streamed to out.
	Build(ctx context.Context, project domain.Project, mode domain.BuildMode, tc domain.Toolchain, out io.Writer) (domain.Artifact, error)
}

// BuildJournal records the last successful build per mode.
type BuildJournal interface {
	// Get returns the record for mode, or nil, nil if none exists.
	Get(root string, mode domain.BuildMode) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(root string, record domain.BuildRecord) error
}
