package repositories

import (
	"context"

	"rentalos/internal/database"
	"rentalos/internal/logger"
	"rentalos/internal/store"
)

// Persisted state layout: one key per entity collection, each value the JSON
// serialization of that collection. Dates travel as RFC 3339 strings and are
// re-hydrated by typed unmarshalling on load.
const (
	PROPERTY_GROUP_KEY   = "property-group"
	HOUSES_KEY           = "houses"
	STAYS_KEY            = "stays"
	CLEANING_TASKS_KEY   = "cleaning-tasks"
	BOARD_POSTS_KEY      = "board-posts"
	SHOPPING_ITEMS_KEY   = "shopping-items"
	ISSUES_KEY           = "issues"
	NOTIFICATIONS_KEY    = "notifications"
	GUEST_ONBOARDING_KEY = "guest-onboarding"
)

var collectionKeys = []string{
	PROPERTY_GROUP_KEY,
	HOUSES_KEY,
	STAYS_KEY,
	CLEANING_TASKS_KEY,
	BOARD_POSTS_KEY,
	SHOPPING_ITEMS_KEY,
	ISSUES_KEY,
	NOTIFICATIONS_KEY,
	GUEST_ONBOARDING_KEY,
}

type StateRepository interface {
	store.Persister
}

type stateRepository struct {
	db  database.DB
	log logger.Logger
}

func NewStateRepository(db database.DB) StateRepository {
	return &stateRepository{
		db:  db,
		log: logger.New("stateRepository"),
	}
}

// Save mirrors every collection to its key. Writes are best-effort local
// persistence; the in-memory store stays authoritative.
func (r *stateRepository) Save(ctx context.Context, state store.State) error {
	log := r.log.Function("Save")

	writes := []struct {
		key   string
		value any
	}{
		{PROPERTY_GROUP_KEY, state.PropertyGroup},
		{HOUSES_KEY, state.Houses},
		{STAYS_KEY, state.Stays},
		{CLEANING_TASKS_KEY, state.CleaningTasks},
		{BOARD_POSTS_KEY, state.BoardPosts},
		{SHOPPING_ITEMS_KEY, state.ShoppingItems},
		{ISSUES_KEY, state.Issues},
		{NOTIFICATIONS_KEY, state.Notifications},
		{GUEST_ONBOARDING_KEY, state.Onboarding},
	}

	for _, write := range writes {
		if err := database.NewCacheBuilder(r.db.State, write.key).
			WithStruct(write.value).
			WithContext(ctx).
			Set(); err != nil {
			return log.Err("failed to persist collection", err, "key", write.key)
		}
	}

	return nil
}

// Load reads every collection key. found is false only when no key exists at
// all — the caller seeds the demo dataset in that case.
func (r *stateRepository) Load(ctx context.Context) (store.State, bool, error) {
	log := r.log.Function("Load")

	var state store.State
	found := false

	reads := []struct {
		key    string
		target any
	}{
		{PROPERTY_GROUP_KEY, &state.PropertyGroup},
		{HOUSES_KEY, &state.Houses},
		{STAYS_KEY, &state.Stays},
		{CLEANING_TASKS_KEY, &state.CleaningTasks},
		{BOARD_POSTS_KEY, &state.BoardPosts},
		{SHOPPING_ITEMS_KEY, &state.ShoppingItems},
		{ISSUES_KEY, &state.Issues},
		{NOTIFICATIONS_KEY, &state.Notifications},
		{GUEST_ONBOARDING_KEY, &state.Onboarding},
	}

	for _, read := range reads {
		keyFound, err := database.NewCacheBuilder(r.db.State, read.key).
			WithContext(ctx).
			Get(read.target)
		if err != nil {
			return store.State{}, false, log.Err("failed to load collection", err, "key", read.key)
		}
		if keyFound {
			found = true
		}
	}

	return state, found, nil
}

// Clear removes every collection key
func (r *stateRepository) Clear(ctx context.Context) error {
	log := r.log.Function("Clear")

	for _, key := range collectionKeys {
		if err := database.NewCacheBuilder(r.db.State, key).
			WithContext(ctx).
			Delete(); err != nil {
			return log.Err("failed to remove collection", err, "key", key)
		}
	}

	log.Info("Persisted state cleared")
	return nil
}
