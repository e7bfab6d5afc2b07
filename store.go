package carteira

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Persister is the persistence contract the store consumes. Load returns
// ErrNoSnapshot on a first run.
type Persister interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// Store is the single source of truth for the portfolio state. It holds the
// current snapshot, funnels every mutation through the snapshot's
// copy-on-write methods, and saves after each one.
//
// Saves are best effort: a failure is logged as a warning and the in-memory
// snapshot stays authoritative. Nothing is retried.
type Store struct {
	persister Persister
	snapshot  *Snapshot
	log       zerolog.Logger
}

// Open loads the persisted snapshot into a new store. A first run, or an
// unreadable blob, falls back to the given seed; the unreadable case
// additionally logs a warning.
func Open(p Persister, seed *Snapshot, log zerolog.Logger) *Store {
	s := &Store{persister: p, log: log}
	snapshot, err := p.Load()
	switch {
	case err == nil:
		s.snapshot = snapshot.Refresh()
	case errors.Is(err, ErrNoSnapshot):
		s.snapshot = seed.Refresh()
	default:
		log.Warn().Err(err).Msg("could not load snapshot, starting from seed")
		s.snapshot = seed.Refresh()
	}
	return s
}

// Snapshot returns a deep copy of the current state. Readers never observe
// a later mutation through it.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Clone()
}

// Apply runs one mutation against the current snapshot and, when it
// succeeds, installs the result and saves it. The mutation receives the
// live snapshot; its copy-on-write methods keep it intact on failure.
func (s *Store) Apply(mutate func(*Snapshot) (*Snapshot, error)) error {
	next, err := mutate(s.snapshot)
	if err != nil {
		return err
	}
	if next == nil {
		return fmt.Errorf("mutation returned no snapshot")
	}
	s.snapshot = next
	s.save()
	return nil
}

// Replace installs a snapshot wholesale, refreshing its derived fields.
// Used by import and reset.
func (s *Store) Replace(snapshot *Snapshot) {
	s.snapshot = snapshot.Refresh()
	s.save()
}

func (s *Store) save() {
	if err := s.persister.Save(s.snapshot); err != nil {
		s.log.Warn().Err(err).Msg("could not save snapshot, in-memory state kept")
	}
}
