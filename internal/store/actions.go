package store

import (
	"rentalos/internal/models"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionReplaceState       ActionType = "replace_state"
	ActionSetPropertyGroup   ActionType = "set_property_group"
	ActionUpsertHouse        ActionType = "upsert_house"
	ActionDeleteHouse        ActionType = "delete_house"
	ActionUpsertStay         ActionType = "upsert_stay"
	ActionDeleteStay         ActionType = "delete_stay"
	ActionUpsertCleaningTask ActionType = "upsert_cleaning_task"
	ActionDeleteCleaningTask ActionType = "delete_cleaning_task"
	ActionUpsertIssue        ActionType = "upsert_issue"
	ActionDeleteIssue        ActionType = "delete_issue"
	ActionUpsertShoppingItem ActionType = "upsert_shopping_item"
	ActionDeleteShoppingItem ActionType = "delete_shopping_item"
	ActionUpsertBoardPost    ActionType = "upsert_board_post"
	ActionDeleteBoardPost    ActionType = "delete_board_post"
	ActionUpsertNotification ActionType = "upsert_notification"
	ActionDeleteNotification ActionType = "delete_notification"
	ActionUpsertOnboarding   ActionType = "upsert_onboarding"
	ActionClearAll           ActionType = "clear_all"
)

// Action carries one mutation intent. Mutations are whole-entity replace
// operations keyed by id; callers pass the fully-updated entity.
type Action struct {
	Type          ActionType
	ID            uuid.UUID
	State         *State
	PropertyGroup *models.PropertyGroup
	House         *models.House
	Stay          *models.Stay
	CleaningTask  *models.CleaningTask
	Issue         *models.Issue
	ShoppingItem  *models.ShoppingItem
	BoardPost     *models.BoardPost
	Notification  *models.Notification
	Onboarding    *models.GuestOnboarding
}

func ReplaceState(state State) Action {
	return Action{Type: ActionReplaceState, State: &state}
}

func SetPropertyGroup(group models.PropertyGroup) Action {
	return Action{Type: ActionSetPropertyGroup, PropertyGroup: &group}
}

func UpsertHouse(house models.House) Action {
	return Action{Type: ActionUpsertHouse, House: &house}
}

func DeleteHouse(id uuid.UUID) Action {
	return Action{Type: ActionDeleteHouse, ID: id}
}

func UpsertStay(stay models.Stay) Action {
	return Action{Type: ActionUpsertStay, Stay: &stay}
}

func DeleteStay(id uuid.UUID) Action {
	return Action{Type: ActionDeleteStay, ID: id}
}

func UpsertCleaningTask(task models.CleaningTask) Action {
	return Action{Type: ActionUpsertCleaningTask, CleaningTask: &task}
}

func DeleteCleaningTask(id uuid.UUID) Action {
	return Action{Type: ActionDeleteCleaningTask, ID: id}
}

func UpsertIssue(issue models.Issue) Action {
	return Action{Type: ActionUpsertIssue, Issue: &issue}
}

func DeleteIssue(id uuid.UUID) Action {
	return Action{Type: ActionDeleteIssue, ID: id}
}

func UpsertShoppingItem(item models.ShoppingItem) Action {
	return Action{Type: ActionUpsertShoppingItem, ShoppingItem: &item}
}

func DeleteShoppingItem(id uuid.UUID) Action {
	return Action{Type: ActionDeleteShoppingItem, ID: id}
}

func UpsertBoardPost(post models.BoardPost) Action {
	return Action{Type: ActionUpsertBoardPost, BoardPost: &post}
}

func DeleteBoardPost(id uuid.UUID) Action {
	return Action{Type: ActionDeleteBoardPost, ID: id}
}

func UpsertNotification(notification models.Notification) Action {
	return Action{Type: ActionUpsertNotification, Notification: &notification}
}

func DeleteNotification(id uuid.UUID) Action {
	return Action{Type: ActionDeleteNotification, ID: id}
}

func UpsertOnboarding(record models.GuestOnboarding) Action {
	return Action{Type: ActionUpsertOnboarding, Onboarding: &record}
}

func ClearAll() Action {
	return Action{Type: ActionClearAll}
}
