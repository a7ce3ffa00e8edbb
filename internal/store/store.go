// Package store persists whole collections as JSON snapshot files.
//
// Each collection lives in <dir>/<name>.json and is rewritten in full on every
// save. Writes go to a temporary file in the same directory which is then
// renamed over the target, so readers never observe a half-written snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Collection names.
const (
	Users          = "users"
	Actions        = "actions"
	Participations = "participations"
)

// JSONStore loads and saves named collections on an afero filesystem.
type JSONStore struct {
	fs  afero.Fs
	dir string
}

// NewJSONStore creates a store rooted at dir on fs.
func NewJSONStore(fs afero.Fs, dir string) *JSONStore {
	return &JSONStore{fs: fs, dir: dir}
}

// NewOSStore creates a store backed by the operating system filesystem.
func NewOSStore(dir string) *JSONStore {
	return NewJSONStore(afero.NewOsFs(), dir)
}

// Path returns the file backing the named collection.
func (s *JSONStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load decodes the named collection into out, which must be a pointer to a
// slice. A missing or empty file leaves out untouched.
func (s *JSONStore) Load(name string, out interface{}) error {
	data, err := afero.ReadFile(s.fs, s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Save overwrites the named collection with records.
func (s *JSONStore) Save(name string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := s.fs.Rename(tmpName, s.Path(name)); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
