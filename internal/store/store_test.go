package store

import (
	"context"
	"sync"
	"testing"

	"rentalos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePersister records saves in memory
type fakePersister struct {
	mu      sync.Mutex
	state   State
	found   bool
	saves   int
	cleared bool
}

func (p *fakePersister) Save(ctx context.Context, state State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.found = true
	p.saves++
	return nil
}

func (p *fakePersister) Load(ctx context.Context) (State, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Clone(), p.found, nil
}

func (p *fakePersister) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = State{}
	p.found = false
	p.cleared = true
	return nil
}

func TestLoadSeedsDemoDatasetWhenEmpty(t *testing.T) {
	persister := &fakePersister{}
	s := New(persister)

	require.NoError(t, s.Load(context.Background()))

	state := s.Snapshot()
	assert.NotEmpty(t, state.Houses)
	assert.NotEmpty(t, state.PropertyGroup.Members)
	assert.NotEmpty(t, state.Stays)

	// The seed is written through so the next load finds it
	persister.mu.Lock()
	defer persister.mu.Unlock()
	assert.True(t, persister.found)
}

func TestLoadUsesPersistedStateWhenPresent(t *testing.T) {
	persister := &fakePersister{
		state: State{Houses: []models.House{{Base: models.NewBase(), Name: "Persisted"}}},
		found: true,
	}
	s := New(persister)

	require.NoError(t, s.Load(context.Background()))

	state := s.Snapshot()
	require.Len(t, state.Houses, 1)
	assert.Equal(t, "Persisted", state.Houses[0].Name)
}

func TestSnapshotIsIsolatedFromStore(t *testing.T) {
	persister := &fakePersister{found: true}
	s := New(persister)
	require.NoError(t, s.Load(context.Background()))

	s.Dispatch(UpsertHouse(models.House{Base: models.NewBase(), Name: "Lake House"}))

	snapshot := s.Snapshot()
	snapshot.Houses[0].Name = "Mutated"

	assert.Equal(t, "Lake House", s.Snapshot().Houses[0].Name)
}

func TestDispatchAppliesActionsInOrder(t *testing.T) {
	persister := &fakePersister{found: true}
	s := New(persister)
	require.NoError(t, s.Load(context.Background()))

	house := models.House{Base: models.NewBase(), Name: "Lake House"}
	next := s.Dispatch(
		UpsertHouse(house),
		DeleteHouse(house.ID),
	)

	assert.Empty(t, next.Houses)
}

func TestResetClearsStateAndStorage(t *testing.T) {
	persister := &fakePersister{}
	s := New(persister)
	require.NoError(t, s.Load(context.Background()))
	require.NotEmpty(t, s.Snapshot().Houses)

	require.NoError(t, s.Reset(context.Background()))

	assert.Empty(t, s.Snapshot().Houses)
	persister.mu.Lock()
	defer persister.mu.Unlock()
	assert.True(t, persister.cleared)
}
