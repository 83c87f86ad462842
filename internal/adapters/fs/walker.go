// Package fs provides file system adapters for walking, hashing and
// comparing build inputs against the artifact.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// FileEntry is a file yielded by the Walker.
type FileEntry struct {
	Path string
	Info fs.FileInfo
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root, skipping version-control
// directories and entries whose name matches one of ignores. An entry that
// cannot be read is yielded together with its error.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[FileEntry, error] {
	return func(yield func(FileEntry, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(FileEntry{Path: path}, err) {
					return filepath.SkipAll
				}
				return nil
			}

			if w.ignored(d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			info, err := d.Info()
			if !yield(FileEntry{Path: path, Info: info}, err) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) ignored(d fs.DirEntry, ignores []string) bool {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
