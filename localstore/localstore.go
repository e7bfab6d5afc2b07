// Package localstore persists the portfolio snapshot as a single JSON blob
// under a fixed storage key, a file named <key>.json in the data directory.
package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/canhoto/carteira"
)

// ResetWindow is how long a reset stays armed before the confirmation
// expires.
const ResetWindow = 5 * time.Second

// PersistenceError reports a failed read or write of the storage blob.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store reads and writes the snapshot blob. It implements
// carteira.Persister.
type Store struct {
	dir string
	key string
	log zerolog.Logger
	now func() time.Time
}

// New returns a store keeping its blob in dir under the given key. The
// directory is created on the first save.
func New(dir, key string, log zerolog.Logger) *Store {
	return &Store{dir: dir, key: key, log: log, now: time.Now}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, s.key+".json")
}

func (s *Store) armPath() string {
	return filepath.Join(s.dir, s.key+".reset")
}

// Load reads the snapshot blob. It returns carteira.ErrNoSnapshot when no
// blob has been stored yet.
func (s *Store) Load() (*carteira.Snapshot, error) {
	path := s.path()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, carteira.ErrNoSnapshot
	}
	if err != nil {
		return nil, &PersistenceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	snapshot, err := carteira.DecodeSnapshot(f)
	if err != nil {
		return nil, &PersistenceError{Op: "decode", Path: path, Err: err}
	}
	return snapshot, nil
}

// Save writes the snapshot blob. The write goes through a temporary file
// and a rename, so a failure never leaves a truncated blob behind.
func (s *Store) Save(snapshot *carteira.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &PersistenceError{Op: "mkdir", Path: s.dir, Err: err}
	}
	path := s.path()
	tmp, err := os.CreateTemp(s.dir, s.key+"-*.json")
	if err != nil {
		return &PersistenceError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := carteira.EncodeSnapshot(tmp, snapshot); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "encode", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &PersistenceError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// Clear removes the snapshot blob. Clearing an absent blob is not an error.
func (s *Store) Clear() error {
	path := s.path()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// Reset implements the two-step destructive clear. The first call arms a
// confirmation window and returns false; a second call within ResetWindow
// clears the blob and returns true. A call after the window expires re-arms.
func (s *Store) Reset() (bool, error) {
	armPath := s.armPath()
	info, err := os.Stat(armPath)
	if err == nil && s.now().Sub(info.ModTime()) <= ResetWindow {
		os.Remove(armPath)
		if err := s.Clear(); err != nil {
			return false, err
		}
		s.log.Info().Str("key", s.key).Msg("storage cleared")
		return true, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, &PersistenceError{Op: "stat", Path: armPath, Err: err}
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return false, &PersistenceError{Op: "mkdir", Path: s.dir, Err: err}
	}
	if err := os.WriteFile(armPath, []byte(s.now().Format(time.RFC3339)), 0644); err != nil {
		return false, &PersistenceError{Op: "write", Path: armPath, Err: err}
	}
	return false, nil
}
