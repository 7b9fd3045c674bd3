package store

import (
	"rentalos/internal/models"

	"github.com/google/uuid"
)

// Reduce applies one action to a snapshot and returns the next snapshot. It
// is a pure function: the input state is never mutated and no side effects
// run here — storage writes and notification creation belong to the calling
// layer. The reducer performs no validation either; malformed intents are
// rejected by the controller layer before they reach this point. Unknown
// action types return the state unchanged.
func Reduce(state State, action Action) State {
	next := state.Clone()

	switch action.Type {
	case ActionReplaceState:
		if action.State != nil {
			return action.State.Clone()
		}

	case ActionClearAll:
		return State{}

	case ActionSetPropertyGroup:
		if action.PropertyGroup != nil {
			next.PropertyGroup = action.PropertyGroup.Clone()
		}

	case ActionUpsertHouse:
		if action.House != nil {
			next.Houses = upsert(next.Houses, action.House.Clone(), houseID)
		}
	case ActionDeleteHouse:
		next.Houses = remove(next.Houses, action.ID, houseID)

	case ActionUpsertStay:
		if action.Stay != nil {
			next.Stays = upsert(next.Stays, action.Stay.Clone(), stayID)
		}
	case ActionDeleteStay:
		next.Stays = remove(next.Stays, action.ID, stayID)

	case ActionUpsertCleaningTask:
		if action.CleaningTask != nil {
			next.CleaningTasks = upsert(next.CleaningTasks, action.CleaningTask.Clone(), taskID)
		}
	case ActionDeleteCleaningTask:
		next.CleaningTasks = remove(next.CleaningTasks, action.ID, taskID)

	case ActionUpsertIssue:
		if action.Issue != nil {
			next.Issues = upsert(next.Issues, action.Issue.Clone(), issueID)
		}
	case ActionDeleteIssue:
		next.Issues = remove(next.Issues, action.ID, issueID)

	case ActionUpsertShoppingItem:
		if action.ShoppingItem != nil {
			next.ShoppingItems = upsert(next.ShoppingItems, action.ShoppingItem.Clone(), itemID)
		}
	case ActionDeleteShoppingItem:
		next.ShoppingItems = remove(next.ShoppingItems, action.ID, itemID)

	case ActionUpsertBoardPost:
		if action.BoardPost != nil {
			next.BoardPosts = upsert(next.BoardPosts, *action.BoardPost, postID)
		}
	case ActionDeleteBoardPost:
		next.BoardPosts = remove(next.BoardPosts, action.ID, postID)

	case ActionUpsertNotification:
		if action.Notification != nil {
			next.Notifications = upsert(next.Notifications, action.Notification.Clone(), notificationID)
		}
	case ActionDeleteNotification:
		next.Notifications = remove(next.Notifications, action.ID, notificationID)

	case ActionUpsertOnboarding:
		if action.Onboarding != nil {
			next.Onboarding = upsertOnboarding(next.Onboarding, action.Onboarding.Clone())
		}
	}

	return next
}

// upsert replaces the entity with the same id or appends it, preserving
// insertion order for everything else.
func upsert[T any](items []T, item T, id func(T) uuid.UUID) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func remove[T any](items []T, target uuid.UUID, id func(T) uuid.UUID) []T {
	for i := range items {
		if id(items[i]) == target {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func upsertOnboarding(records []models.GuestOnboarding, record models.GuestOnboarding) []models.GuestOnboarding {
	for i := range records {
		if records[i].MemberID == record.MemberID {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func houseID(h models.House) uuid.UUID            { return h.ID }
func stayID(s models.Stay) uuid.UUID              { return s.ID }
func taskID(t models.CleaningTask) uuid.UUID      { return t.ID }
func issueID(i models.Issue) uuid.UUID            { return i.ID }
func itemID(i models.ShoppingItem) uuid.UUID      { return i.ID }
func postID(p models.BoardPost) uuid.UUID         { return p.ID }
func notificationID(n models.Notification) uuid.UUID { return n.ID }
