package store

import (
	"rentalos/internal/models"
)

// State is the authoritative snapshot of every entity collection. The store
// is the sole owner of entity instances; consumers read snapshots and
// dispatch actions rather than mutating directly.
type State struct {
	PropertyGroup models.PropertyGroup     `json:"propertyGroup"`
	Houses        []models.House           `json:"houses"`
	Stays         []models.Stay            `json:"stays"`
	CleaningTasks []models.CleaningTask    `json:"cleaningTasks"`
	Issues        []models.Issue           `json:"issues"`
	ShoppingItems []models.ShoppingItem    `json:"shoppingItems"`
	BoardPosts    []models.BoardPost       `json:"boardPosts"`
	Notifications []models.Notification    `json:"notifications"`
	Onboarding    []models.GuestOnboarding `json:"onboarding"`
}

// Clone deep copies the full snapshot so no consumer ever aliases stored
// slices.
func (s State) Clone() State {
	out := State{
		PropertyGroup: s.PropertyGroup.Clone(),
		Houses:        make([]models.House, len(s.Houses)),
		Stays:         make([]models.Stay, len(s.Stays)),
		CleaningTasks: make([]models.CleaningTask, len(s.CleaningTasks)),
		Issues:        make([]models.Issue, len(s.Issues)),
		ShoppingItems: make([]models.ShoppingItem, len(s.ShoppingItems)),
		BoardPosts:    make([]models.BoardPost, len(s.BoardPosts)),
		Notifications: make([]models.Notification, len(s.Notifications)),
		Onboarding:    make([]models.GuestOnboarding, len(s.Onboarding)),
	}
	for i, house := range s.Houses {
		out.Houses[i] = house.Clone()
	}
	for i, stay := range s.Stays {
		out.Stays[i] = stay.Clone()
	}
	for i, task := range s.CleaningTasks {
		out.CleaningTasks[i] = task.Clone()
	}
	for i, issue := range s.Issues {
		out.Issues[i] = issue.Clone()
	}
	for i, item := range s.ShoppingItems {
		out.ShoppingItems[i] = item.Clone()
	}
	copy(out.BoardPosts, s.BoardPosts)
	for i, notification := range s.Notifications {
		out.Notifications[i] = notification.Clone()
	}
	for i, record := range s.Onboarding {
		out.Onboarding[i] = record.Clone()
	}
	return out
}
