package store

import (
	"context"
	"sync"
	"time"

	"rentalos/internal/logger"
)

// Persister mirrors state snapshots into durable storage. Implemented by the
// repositories package against valkey.
type Persister interface {
	Save(ctx context.Context, state State) error
	Load(ctx context.Context) (State, bool, error)
	Clear(ctx context.Context) error
}

// Store owns the current state. Every consumer reads a snapshot and
// dispatches actions; the mutex keeps writes single-file under concurrent
// handlers.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	loaded    bool
	log       logger.Logger
}

func New(persister Persister) *Store {
	return &Store{
		persister: persister,
		log:       logger.New("store"),
	}
}

// Load hydrates state from the persistence adapter. On first ever load with
// no stored data the store seeds itself from the demo dataset instead of
// starting empty, and writes that dataset through so subsequent loads find
// it.
func (s *Store) Load(ctx context.Context) error {
	log := s.log.Function("Load")

	state, found, err := s.persister.Load(ctx)
	if err != nil {
		return log.Err("failed to load persisted state", err)
	}

	if !found {
		log.Info("No persisted state found, seeding demo dataset")
		state = DemoState()
		if err := s.persister.Save(ctx, state.Clone()); err != nil {
			log.Warn("failed to persist demo dataset", "error", err)
		}
	}

	s.mu.Lock()
	s.state = state
	s.loaded = true
	s.mu.Unlock()

	log.Info(
		"Store loaded",
		"seeded", !found,
		"houses", len(state.Houses),
		"stays", len(state.Stays),
	)
	return nil
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dispatch applies the actions in order and mirrors the resulting state to
// storage. Persistence is fire-and-forget: the in-memory state is
// authoritative for the session and callers never wait on the write.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	for _, action := range actions {
		s.state = Reduce(s.state, action)
	}
	next := s.state.Clone()
	loaded := s.loaded
	s.mu.Unlock()

	if loaded {
		go s.persist(next.Clone())
	}

	return next
}

// Reset clears persisted and in-memory state. The next Load seeds the demo
// dataset again.
func (s *Store) Reset(ctx context.Context) error {
	log := s.log.Function("Reset")

	s.mu.Lock()
	s.state = Reduce(s.state, ClearAll())
	s.mu.Unlock()

	if err := s.persister.Clear(ctx); err != nil {
		return log.Err("failed to clear persisted state", err)
	}

	log.Info("Store reset")
	return nil
}

func (s *Store) persist(state State) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.persister.Save(ctx, state); err != nil {
		s.log.Function("persist").Er("failed to persist state", err)
	}
}
