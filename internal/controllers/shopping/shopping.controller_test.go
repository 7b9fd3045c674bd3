package shoppingController

import (
	"context"
	"testing"

	"rentalos/config"
	notificationController "rentalos/internal/controllers/notifications"
	"rentalos/internal/events"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (ShoppingControllerInterface, *store.Store, models.House) {
	t.Helper()

	domainStore := store.New(nil)
	notifications := notificationController.New(domainStore, events.NewLocal(config.Config{}))

	house := models.House{Base: models.NewBase(), Name: "Lake House"}
	domainStore.Dispatch(store.UpsertHouse(house))

	return New(domainStore, notifications), domainStore, house
}

func TestAddItemByRole(t *testing.T) {
	controller, domainStore, house := newTestController(t)
	ctx := context.Background()

	t.Run("owner items join the standard list", func(t *testing.T) {
		item, err := controller.AddItem(ctx, AddItemRequest{
			HouseID:     house.ID,
			Name:        "Paper towels",
			AddedBy:     uuid.New(),
			AddedByRole: models.RoleOwner,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ShoppingStandard, item.Status)
		assert.Equal(t, models.PriorityNormal, item.Priority)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("guest items enter as suggestions and notify owners", func(t *testing.T) {
		item, err := controller.AddItem(ctx, AddItemRequest{
			HouseID:     house.ID,
			Name:        "Board games",
			AddedBy:     uuid.New(),
			AddedByRole: models.RoleGuest,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ShoppingSuggested, item.Status)

		state := domainStore.Snapshot()
		require.Len(t, state.Notifications, 1)
		assert.Equal(t, models.NotificationShoppingSuggested, state.Notifications[0].Type)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := controller.AddItem(ctx, AddItemRequest{HouseID: house.ID})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown house", func(t *testing.T) {
		_, err := controller.AddItem(ctx, AddItemRequest{HouseID: uuid.New(), Name: "Soap"})
		assert.ErrorIs(t, err, ErrHouseNotFound)
	})
}

func TestSuggestionReview(t *testing.T) {
	controller, domainStore, house := newTestController(t)
	ctx := context.Background()

	suggest := func() *models.ShoppingItem {
		item, err := controller.AddItem(ctx, AddItemRequest{
			HouseID:     house.ID,
			Name:        "Fancy coffee",
			AddedBy:     uuid.New(),
			AddedByRole: models.RoleGuest,
		})
		require.NoError(t, err)
		return item
	}

	t.Run("approval joins the standard view", func(t *testing.T) {
		item := suggest()

		approved, err := controller.ApproveItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ShoppingApproved, approved.Status)

		listed := queries.ShoppingItemsForHouse(domainStore.Snapshot(), house.ID)
		require.Len(t, listed, 1)
		assert.Equal(t, item.ID, listed[0].ID)

		// Re-reviewing a settled item fails
		_, err = controller.RejectItem(ctx, item.ID)
		assert.ErrorIs(t, err, ErrNotSuggested)
	})

	t.Run("rejection stays out of the standard view", func(t *testing.T) {
		item := suggest()

		rejected, err := controller.RejectItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ShoppingRejected, rejected.Status)

		for _, listed := range queries.ShoppingItemsForHouse(domainStore.Snapshot(), house.ID) {
			assert.NotEqual(t, item.ID, listed.ID)
		}
	})

	t.Run("standard items cannot be reviewed", func(t *testing.T) {
		item, err := controller.AddItem(ctx, AddItemRequest{
			HouseID:     house.ID,
			Name:        "Dish soap",
			AddedByRole: models.RoleCleaner,
		})
		require.NoError(t, err)

		_, err = controller.ApproveItem(ctx, item.ID)
		assert.ErrorIs(t, err, ErrNotSuggested)
	})
}

func TestRemoveItem(t *testing.T) {
	controller, domainStore, house := newTestController(t)
	ctx := context.Background()

	item, err := controller.AddItem(ctx, AddItemRequest{
		HouseID:     house.ID,
		Name:        "Sponges",
		AddedByRole: models.RoleOwner,
	})
	require.NoError(t, err)

	require.NoError(t, controller.RemoveItem(ctx, item.ID))
	assert.Empty(t, domainStore.Snapshot().ShoppingItems)

	assert.ErrorIs(t, controller.RemoveItem(ctx, item.ID), ErrItemNotFound)
}
