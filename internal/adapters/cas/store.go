// Package cas implements the build journal, one JSON record per build mode.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildJournal using flat JSON files under the
// project's state directory.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new build journal.
func NewStore() *Store {
	return &Store{}
}

// recordPath returns .runway/store/<mode>.json below root.
func recordPath(root string, mode domain.BuildMode) string {
	return filepath.Join(root, domain.DefaultStorePath(), mode.Dir()+".json")
}

// Get retrieves the record of the last successful build in mode.
func (s *Store) Get(root string, mode domain.BuildMode) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := recordPath(root, mode)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	return &record, nil
}

// Put stores the record, replacing any earlier record for the same mode.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := recordPath(root, record.Mode)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	// Write to a sibling temp file and rename so readers never see a
	// partial record.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".record-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Temp file is gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
