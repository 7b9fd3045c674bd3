package queries

import (
	"testing"
	"time"

	"rentalos/internal/models"
	"rentalos/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func stay(houseID uuid.UUID, status models.StayStatus, start, end time.Time) models.Stay {
	return models.Stay{
		Base:      models.NewBase(),
		HouseID:   houseID,
		Status:    status,
		StartDate: start,
		EndDate:   end,
	}
}

func TestStaysForHouseSortedByStartDate(t *testing.T) {
	houseID := uuid.New()
	late := stay(houseID, models.StayConfirmed, day(10), day(12))
	early := stay(houseID, models.StayConfirmed, day(1), day(3))
	other := stay(uuid.New(), models.StayConfirmed, day(0), day(2))

	state := store.State{Stays: []models.Stay{late, other, early}}

	stays := StaysForHouse(state, houseID)
	require.Len(t, stays, 2)
	assert.Equal(t, early.ID, stays[0].ID)
	assert.Equal(t, late.ID, stays[1].ID)
}

func TestRequestedStaysOldestFirst(t *testing.T) {
	houseID := uuid.New()
	older := stay(houseID, models.StayRequested, day(5), day(7))
	older.CreatedAt = day(-2)
	newer := stay(houseID, models.StayRequested, day(1), day(3))
	newer.CreatedAt = day(-1)
	confirmed := stay(houseID, models.StayConfirmed, day(1), day(3))

	state := store.State{Stays: []models.Stay{newer, confirmed, older}}

	stays := RequestedStays(state)
	require.Len(t, stays, 2)
	assert.Equal(t, older.ID, stays[0].ID)
	assert.Equal(t, newer.ID, stays[1].ID)
}

func TestOverlappingStays(t *testing.T) {
	houseID := uuid.New()
	booked := stay(houseID, models.StayConfirmed, day(2), day(5))
	cancelled := stay(houseID, models.StayCancelled, day(2), day(5))
	state := store.State{Stays: []models.Stay{booked, cancelled}}

	testCases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"overlapping range collides", day(4), day(6), 1},
		{"touching boundary collides", day(5), day(7), 1},
		{"disjoint range is clear", day(6), day(8), 0},
		{"fully containing range collides", day(1), day(9), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conflicts := OverlappingStays(state, houseID, tc.start, tc.end, uuid.Nil)
			assert.Len(t, conflicts, tc.want)
		})
	}

	t.Run("excluded stay is skipped", func(t *testing.T) {
		conflicts := OverlappingStays(state, houseID, day(3), day(4), booked.ID)
		assert.Empty(t, conflicts)
	})
}

func TestBoardPostsPinnedFirstThenNewest(t *testing.T) {
	houseID := uuid.New()

	oldPinned := models.BoardPost{Base: models.NewBase(), HouseID: houseID, IsPinned: true}
	oldPinned.CreatedAt = day(-10)
	newPost := models.BoardPost{Base: models.NewBase(), HouseID: houseID}
	newPost.CreatedAt = day(-1)
	oldPost := models.BoardPost{Base: models.NewBase(), HouseID: houseID}
	oldPost.CreatedAt = day(-5)

	state := store.State{BoardPosts: []models.BoardPost{oldPost, newPost, oldPinned}}

	posts := BoardPostsForHouse(state, houseID)
	require.Len(t, posts, 3)
	assert.Equal(t, oldPinned.ID, posts[0].ID)
	assert.Equal(t, newPost.ID, posts[1].ID)
	assert.Equal(t, oldPost.ID, posts[2].ID)
}

func TestShoppingItemsStandardViewByPriority(t *testing.T) {
	houseID := uuid.New()

	item := func(priority models.ShoppingPriority, status models.ShoppingItemStatus) models.ShoppingItem {
		return models.ShoppingItem{
			Base:     models.NewBase(),
			HouseID:  houseID,
			Name:     string(priority) + "-" + string(status),
			Priority: priority,
			Status:   status,
		}
	}

	low := item(models.PriorityLow, models.ShoppingStandard)
	urgentApproved := item(models.PriorityUrgent, models.ShoppingApproved)
	normalFirst := item(models.PriorityNormal, models.ShoppingStandard)
	normalSecond := item(models.PriorityNormal, models.ShoppingStandard)
	suggested := item(models.PriorityUrgent, models.ShoppingSuggested)
	rejected := item(models.PriorityUrgent, models.ShoppingRejected)

	state := store.State{ShoppingItems: []models.ShoppingItem{
		low, normalFirst, suggested, urgentApproved, normalSecond, rejected,
	}}

	items := ShoppingItemsForHouse(state, houseID)
	require.Len(t, items, 4)

	// Urgent first, low last; suggested and rejected never appear
	assert.Equal(t, urgentApproved.ID, items[0].ID)
	assert.Equal(t, low.ID, items[3].ID)

	// Equal priority keeps insertion order
	assert.Equal(t, normalFirst.ID, items[1].ID)
	assert.Equal(t, normalSecond.ID, items[2].ID)
}

func TestSuggestedShoppingItems(t *testing.T) {
	houseID := uuid.New()
	suggested := models.ShoppingItem{
		Base: models.NewBase(), HouseID: houseID, Status: models.ShoppingSuggested,
	}
	standard := models.ShoppingItem{
		Base: models.NewBase(), HouseID: houseID, Status: models.ShoppingStandard,
	}
	state := store.State{ShoppingItems: []models.ShoppingItem{standard, suggested}}

	items := SuggestedShoppingItemsForHouse(state, houseID)
	require.Len(t, items, 1)
	assert.Equal(t, suggested.ID, items[0].ID)
}

func TestIssuesForHouseNewestFirst(t *testing.T) {
	houseID := uuid.New()

	older := models.Issue{Base: models.NewBase(), HouseID: houseID, Status: models.IssueOpen}
	older.CreatedAt = day(-5)
	newer := models.Issue{Base: models.NewBase(), HouseID: houseID, Status: models.IssueFixed}
	newer.CreatedAt = day(-1)

	state := store.State{Issues: []models.Issue{older, newer}}

	issues := IssuesForHouse(state, houseID)
	require.Len(t, issues, 2)
	assert.Equal(t, newer.ID, issues[0].ID)

	open := OpenIssuesForHouse(state, houseID)
	require.Len(t, open, 1)
	assert.Equal(t, older.ID, open[0].ID)
}

func TestNotificationsForRole(t *testing.T) {
	guest := models.RoleGuest
	cleaner := models.RoleCleaner

	broadcast := models.Notification{Base: models.NewBase(), Title: "Everyone"}
	guestOnly := models.Notification{Base: models.NewBase(), Title: "Guests", RecipientRole: &guest}
	cleanerOnly := models.Notification{Base: models.NewBase(), Title: "Cleaners", RecipientRole: &cleaner, Read: true}

	state := store.State{Notifications: []models.Notification{broadcast, guestOnly, cleanerOnly}}

	assert.Len(t, NotificationsForRole(state, models.RoleGuest), 2)
	assert.Len(t, NotificationsForRole(state, models.RoleCleaner), 2)
	assert.Len(t, NotificationsForRole(state, models.RoleOwner), 1)
	assert.Len(t, UnreadNotificationsForRole(state, models.RoleCleaner), 1)
}

func TestLookupsReturnFalseOnUnknownIDs(t *testing.T) {
	state := store.State{}

	_, found := HouseByID(state, uuid.New())
	assert.False(t, found)

	_, found = StayByID(state, uuid.New())
	assert.False(t, found)

	_, found = OnboardingForMember(state, uuid.New())
	assert.False(t, found)
}
