package repositories

import (
	"encoding/json"
	"testing"
	"time"

	"rentalos/internal/models"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip pushes a value through the same JSON encoding the cache layer
// applies to collection keys (WithStruct on write, Get on read).
func roundTrip(t *testing.T, in, out any) {
	t.Helper()

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestPersistedStateRoundTrip(t *testing.T) {
	guestRole := models.RoleGuest
	memberID := uuid.New()
	confirmedBy := uuid.New()
	checkedAt := time.Date(2026, 8, 30, 14, 5, 30, 0, time.UTC)
	confirmedAt := time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC)

	house := models.House{
		Base:         models.NewBase(),
		Name:         "Lake House",
		Address:      "12 Shore Rd",
		Rules:        []string{"No smoking"},
		RulesVersion: 2,
		RulesHistory: []models.RulesSnapshot{
			{Version: 1, Rules: []string{"Be kind"}, UpdatedBy: memberID, UpdatedAt: confirmedAt},
		},
		Rooms: []models.Room{
			{ID: uuid.New(), Name: "Master bedroom", Type: models.RoomBedroom, Capacity: 2},
		},
		DefaultArrivalChecklist: models.NewChecklist("Pick up keys"),
	}

	stay := models.Stay{
		Base:             models.NewBase(),
		HouseID:          house.ID,
		StartDate:        time.Date(2026, 9, 4, 15, 0, 0, 0, time.FixedZone("CDT", -5*3600)),
		EndDate:          time.Date(2026, 9, 8, 11, 0, 0, 0, time.UTC),
		Status:           models.StayConfirmed,
		Attendees:        []uuid.UUID{memberID},
		ArrivalChecklist: models.NewChecklist("Pick up keys", "Disarm alarm"),
		ConfirmedBy:      &confirmedBy,
		ConfirmedAt:      &confirmedAt,
	}
	stay.ArrivalChecklist[0].Checked = true
	stay.ArrivalChecklist[0].CheckedBy = &memberID
	stay.ArrivalChecklist[0].CheckedAt = &checkedAt

	item := models.ShoppingItem{
		Base:          models.NewBase(),
		HouseID:       house.ID,
		Name:          "Dish soap",
		Quantity:      2,
		Priority:      models.PriorityHigh,
		Status:        models.ShoppingStandard,
		AddedBy:       memberID,
		EstimatedCost: decimal.RequireFromString("7.49"),
	}

	notification := models.Notification{
		Base:          models.NewBase(),
		Type:          models.NotificationStayConfirmed,
		Title:         "Stay confirmed",
		Message:       "Your stay is confirmed",
		RecipientRole: &guestRole,
	}

	onboarding := models.GuestOnboarding{
		MemberID:          memberID,
		CompletedSteps:    []string{"welcome", "house-tour"},
		RulesAcknowledged: true,
		UpdatedAt:         checkedAt,
	}

	original := store.State{
		Houses:        []models.House{house},
		Stays:         []models.Stay{stay},
		ShoppingItems: []models.ShoppingItem{item},
		Notifications: []models.Notification{notification},
		Onboarding:    []models.GuestOnboarding{onboarding},
	}

	var loaded store.State
	roundTrip(t, original.Houses, &loaded.Houses)
	roundTrip(t, original.Stays, &loaded.Stays)
	roundTrip(t, original.ShoppingItems, &loaded.ShoppingItems)
	roundTrip(t, original.Notifications, &loaded.Notifications)
	roundTrip(t, original.Onboarding, &loaded.Onboarding)

	t.Run("houses keep identity and structure", func(t *testing.T) {
		require.Len(t, loaded.Houses, 1)
		got := loaded.Houses[0]
		assert.Equal(t, house.ID, got.ID)
		assert.Equal(t, house.Rules, got.Rules)
		assert.Equal(t, 2, got.RulesVersion)
		require.Len(t, got.RulesHistory, 1)
		assert.Equal(t, memberID, got.RulesHistory[0].UpdatedBy)
		assert.True(t, got.RulesHistory[0].UpdatedAt.Equal(confirmedAt))
		require.Len(t, got.Rooms, 1)
		assert.Equal(t, house.Rooms[0].ID, got.Rooms[0].ID)
		require.Len(t, got.DefaultArrivalChecklist, 1)
		assert.Equal(t, house.DefaultArrivalChecklist[0].ID, got.DefaultArrivalChecklist[0].ID)
	})

	t.Run("stay dates re-hydrate as times", func(t *testing.T) {
		require.Len(t, loaded.Stays, 1)
		got := loaded.Stays[0]
		assert.Equal(t, stay.ID, got.ID)
		assert.Equal(t, models.StayConfirmed, got.Status)
		assert.True(t, got.StartDate.Equal(stay.StartDate), "start date instant must survive")
		assert.True(t, got.EndDate.Equal(stay.EndDate))
		require.NotNil(t, got.ConfirmedAt)
		assert.True(t, got.ConfirmedAt.Equal(confirmedAt))
		require.NotNil(t, got.ConfirmedBy)
		assert.Equal(t, confirmedBy, *got.ConfirmedBy)

		// A checked item keeps who and when
		require.Len(t, got.ArrivalChecklist, 2)
		first := got.ArrivalChecklist[0]
		assert.True(t, first.Checked)
		require.NotNil(t, first.CheckedBy)
		assert.Equal(t, memberID, *first.CheckedBy)
		require.NotNil(t, first.CheckedAt)
		assert.True(t, first.CheckedAt.Equal(checkedAt))
		assert.False(t, got.ArrivalChecklist[1].Checked)
	})

	t.Run("shopping cost survives as a decimal", func(t *testing.T) {
		require.Len(t, loaded.ShoppingItems, 1)
		got := loaded.ShoppingItems[0]
		assert.Equal(t, item.ID, got.ID)
		assert.True(t, got.EstimatedCost.Equal(item.EstimatedCost))
		assert.Equal(t, models.PriorityHigh, got.Priority)
	})

	t.Run("notification role addressing survives", func(t *testing.T) {
		require.Len(t, loaded.Notifications, 1)
		got := loaded.Notifications[0]
		require.NotNil(t, got.RecipientRole)
		assert.Equal(t, models.RoleGuest, *got.RecipientRole)
	})

	t.Run("onboarding record survives", func(t *testing.T) {
		require.Len(t, loaded.Onboarding, 1)
		got := loaded.Onboarding[0]
		assert.Equal(t, memberID, got.MemberID)
		assert.Equal(t, []string{"welcome", "house-tour"}, got.CompletedSteps)
		assert.True(t, got.RulesAcknowledged)
		assert.True(t, got.UpdatedAt.Equal(checkedAt))
	})
}

// Empty collections come back empty, not nil-vs-empty surprises that would
// break the demo-seed detection in Load.
func TestPersistedStateRoundTripEmpty(t *testing.T) {
	var loaded []models.Stay
	roundTrip(t, []models.Stay{}, &loaded)
	assert.Empty(t, loaded)
}
