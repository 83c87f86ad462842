package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/runway/internal/core/domain"
)

// Staleness implements ports.StalenessChecker by comparing modification
// times of the build inputs with the artifact's.
type Staleness struct {
	walker *Walker
}

// NewStaleness creates a new Staleness checker.
func NewStaleness(walker *Walker) *Staleness {
	return &Staleness{walker: walker}
}

// Inspect stats the artifact for mode.
func (s *Staleness) Inspect(project domain.Project, mode domain.BuildMode) domain.Artifact {
	art := domain.Artifact{Path: project.ArtifactPath(mode)}
	info, err := os.Stat(art.Path)
	if err != nil || info.IsDir() {
		return art
	}
	art.Exists = true
	art.ModTime = info.ModTime()
	return art
}

// NeedsRebuild reports whether the artifact is stale. It is stale when a
// rebuild is forced, when it does not exist, or when the manifest, the lock
// file, the source root or any source file is strictly newer. Inputs that
// cannot be read count as newer.
func (s *Staleness) NeedsRebuild(req domain.RunRequest, project domain.Project) domain.Decision {
	if req.ForceRebuild {
		return domain.Decision{Rebuild: true, Reason: "rebuild forced"}
	}

	art := s.Inspect(project, req.Mode)
	if !art.Exists {
		return domain.Decision{Rebuild: true, Reason: "artifact missing", Trigger: art.Path}
	}

	manifest := project.ManifestPath()
	if d, stale := newer(manifest, art.ModTime, true); stale {
		return d
	}

	if lock := project.LockPath(); lock != "" {
		if d, stale := newer(lock, art.ModTime, false); stale {
			return d
		}
	}

	src := project.SourcePath()
	if d, stale := newer(src, art.ModTime, false); stale {
		return d
	}

	for entry, err := range s.walker.WalkFiles(src, nil) {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && entry.Path == src {
				break
			}
			return domain.Decision{Rebuild: true, Reason: "unreadable input", Trigger: entry.Path}
		}
		if entry.Info.ModTime().After(art.ModTime) {
			return domain.Decision{Rebuild: true, Reason: "source changed", Trigger: entry.Path}
		}
	}

	return domain.Decision{Reason: "artifact up to date"}
}

// newer checks one input. Missing optional inputs are ignored.
func newer(path string, than time.Time, required bool) (domain.Decision, bool) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		return domain.Decision{}, false
	case errors.Is(err, fs.ErrNotExist):
		return domain.Decision{Rebuild: true, Reason: "input missing", Trigger: path}, true
	case err != nil:
		return domain.Decision{Rebuild: true, Reason: "unreadable input", Trigger: path}, true
	case info.ModTime().After(than):
		return domain.Decision{Rebuild: true, Reason: "input changed", Trigger: path}, true
	default:
		return domain.Decision{}, false
	}
}
