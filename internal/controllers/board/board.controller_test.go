package boardController

import (
	"context"
	"testing"

	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (BoardControllerInterface, *store.Store, models.House) {
	t.Helper()

	domainStore := store.New(nil)
	house := models.House{Base: models.NewBase(), Name: "Lake House"}
	domainStore.Dispatch(store.UpsertHouse(house))

	return New(domainStore), domainStore, house
}

func TestCreatePost(t *testing.T) {
	controller, _, house := newTestController(t)
	ctx := context.Background()
	author := uuid.New()

	post, err := controller.CreatePost(ctx, house.ID, author, "Welcome to the lake!")
	require.NoError(t, err)
	assert.Equal(t, author, post.AuthorID)
	assert.False(t, post.IsPinned)

	t.Run("unknown house", func(t *testing.T) {
		_, err := controller.CreatePost(ctx, uuid.New(), author, "hi")
		assert.ErrorIs(t, err, ErrHouseNotFound)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := controller.CreatePost(ctx, house.ID, author, "")
		assert.ErrorIs(t, err, ErrContentRequired)
	})
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	controller, _, house := newTestController(t)
	ctx := context.Background()
	author := uuid.New()

	post, err := controller.CreatePost(ctx, house.ID, author, "Grill is fixed")
	require.NoError(t, err)

	updated, err := controller.UpdatePost(ctx, post.ID, author, "Grill is fixed, propane is full")
	require.NoError(t, err)
	assert.Equal(t, "Grill is fixed, propane is full", updated.Content)

	_, err = controller.UpdatePost(ctx, post.ID, uuid.New(), "vandalism")
	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestPinnedPostsSortFirst(t *testing.T) {
	controller, domainStore, house := newTestController(t)
	ctx := context.Background()
	author := uuid.New()

	older, err := controller.CreatePost(ctx, house.ID, author, "older post")
	require.NoError(t, err)
	newer, err := controller.CreatePost(ctx, house.ID, author, "newer post")
	require.NoError(t, err)
	_ = newer

	pinned, err := controller.SetPinned(ctx, older.ID, true)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	posts := queries.BoardPostsForHouse(domainStore.Snapshot(), house.ID)
	require.Len(t, posts, 2)
	assert.Equal(t, older.ID, posts[0].ID)
}

func TestDeletePost(t *testing.T) {
	controller, domainStore, house := newTestController(t)
	ctx := context.Background()

	post, err := controller.CreatePost(ctx, house.ID, uuid.New(), "short lived")
	require.NoError(t, err)

	require.NoError(t, controller.DeletePost(ctx, post.ID))
	assert.Empty(t, domainStore.Snapshot().BoardPosts)

	assert.ErrorIs(t, controller.DeletePost(ctx, post.ID), ErrPostNotFound)
}
