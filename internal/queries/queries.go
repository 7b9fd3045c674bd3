// Package queries holds the derived-view layer: pure, side-effect-free
// projections over a state snapshot. Every call re-scans the relevant
// collection and returns a fresh slice — results never alias stored arrays
// and are not stable across dispatches.
package queries

import (
	"sort"
	"time"

	"rentalos/internal/models"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

// StaysForHouse returns the house's stays ascending by start date
func StaysForHouse(state store.State, houseID uuid.UUID) []models.Stay {
	stays := filterStays(state, func(s models.Stay) bool { return s.HouseID == houseID })
	sort.SliceStable(stays, func(i, j int) bool {
		return stays[i].StartDate.Before(stays[j].StartDate)
	})
	return stays
}

// RequestedStays returns pending requests oldest first, so hosts review them
// first-come-first-served.
func RequestedStays(state store.State) []models.Stay {
	stays := filterStays(state, func(s models.Stay) bool { return s.Status == models.StayRequested })
	sort.SliceStable(stays, func(i, j int) bool {
		return stays[i].CreatedAt.Before(stays[j].CreatedAt)
	})
	return stays
}

// ActiveStayForHouse returns the currently active stay, if any
func ActiveStayForHouse(state store.State, houseID uuid.UUID) (models.Stay, bool) {
	for _, stay := range state.Stays {
		if stay.HouseID == houseID && stay.Status == models.StayActive {
			return stay.Clone(), true
		}
	}
	return models.Stay{}, false
}

// OverlappingStays returns non-cancelled stays at the house whose date range
// collides with [start, end). Used by the creation-time overlap advisory.
func OverlappingStays(state store.State, houseID uuid.UUID, start, end time.Time, exclude uuid.UUID) []models.Stay {
	candidate := models.Stay{HouseID: houseID, StartDate: start, EndDate: end}
	return filterStays(state, func(s models.Stay) bool {
		if s.ID == exclude || s.HouseID != houseID || s.Status == models.StayCancelled {
			return false
		}
		return candidate.Overlaps(&s)
	})
}

// BoardPostsForHouse returns posts pinned-first, newest first within each
// group.
func BoardPostsForHouse(state store.State, houseID uuid.UUID) []models.BoardPost {
	posts := make([]models.BoardPost, 0)
	for _, post := range state.BoardPosts {
		if post.HouseID == houseID {
			posts = append(posts, post)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// ShoppingItemsForHouse returns the standard view: standard and approved
// items ascending by priority rank, ties keeping insertion order.
func ShoppingItemsForHouse(state store.State, houseID uuid.UUID) []models.ShoppingItem {
	items := filterShopping(state, func(i models.ShoppingItem) bool {
		return i.HouseID == houseID && i.InStandardView()
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
	return items
}

// SuggestedShoppingItemsForHouse returns guest suggestions awaiting review,
// oldest first.
func SuggestedShoppingItemsForHouse(state store.State, houseID uuid.UUID) []models.ShoppingItem {
	items := filterShopping(state, func(i models.ShoppingItem) bool {
		return i.HouseID == houseID && i.Status == models.ShoppingSuggested
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

// IssuesForHouse returns every issue for the house newest first
func IssuesForHouse(state store.State, houseID uuid.UUID) []models.Issue {
	issues := filterIssues(state, func(i models.Issue) bool { return i.HouseID == houseID })
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	return issues
}

// OpenIssuesForHouse excludes fixed issues, newest first
func OpenIssuesForHouse(state store.State, houseID uuid.UUID) []models.Issue {
	issues := filterIssues(state, func(i models.Issue) bool {
		return i.HouseID == houseID && i.Status != models.IssueFixed
	})
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	return issues
}

// PendingCleaningTasks returns pending tasks across all houses
func PendingCleaningTasks(state store.State) []models.CleaningTask {
	tasks := make([]models.CleaningTask, 0)
	for _, task := range state.CleaningTasks {
		if task.Status == models.CleaningPending {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks
}

// CleaningTasksForHouse returns the house's tasks newest first
func CleaningTasksForHouse(state store.State, houseID uuid.UUID) []models.CleaningTask {
	tasks := make([]models.CleaningTask, 0)
	for _, task := range state.CleaningTasks {
		if task.HouseID == houseID {
			tasks = append(tasks, task.Clone())
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

// NotificationsForRole returns notifications visible to a role, newest first
func NotificationsForRole(state store.State, role models.Role) []models.Notification {
	notifications := make([]models.Notification, 0)
	for _, n := range state.Notifications {
		if n.VisibleToRole(role) {
			notifications = append(notifications, n.Clone())
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}

// UnreadNotificationsForRole filters NotificationsForRole down to unread
func UnreadNotificationsForRole(state store.State, role models.Role) []models.Notification {
	notifications := make([]models.Notification, 0)
	for _, n := range NotificationsForRole(state, role) {
		if !n.Read {
			notifications = append(notifications, n)
		}
	}
	return notifications
}

// Lookups return ok=false on unknown ids; absent entities are empty states,
// never panics.

func HouseByID(state store.State, id uuid.UUID) (models.House, bool) {
	for _, house := range state.Houses {
		if house.ID == id {
			return house.Clone(), true
		}
	}
	return models.House{}, false
}

func StayByID(state store.State, id uuid.UUID) (models.Stay, bool) {
	for _, stay := range state.Stays {
		if stay.ID == id {
			return stay.Clone(), true
		}
	}
	return models.Stay{}, false
}

func CleaningTaskByID(state store.State, id uuid.UUID) (models.CleaningTask, bool) {
	for _, task := range state.CleaningTasks {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return models.CleaningTask{}, false
}

func IssueByID(state store.State, id uuid.UUID) (models.Issue, bool) {
	for _, issue := range state.Issues {
		if issue.ID == id {
			return issue.Clone(), true
		}
	}
	return models.Issue{}, false
}

func ShoppingItemByID(state store.State, id uuid.UUID) (models.ShoppingItem, bool) {
	for _, item := range state.ShoppingItems {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return models.ShoppingItem{}, false
}

func BoardPostByID(state store.State, id uuid.UUID) (models.BoardPost, bool) {
	for _, post := range state.BoardPosts {
		if post.ID == id {
			return post, true
		}
	}
	return models.BoardPost{}, false
}

func NotificationByID(state store.State, id uuid.UUID) (models.Notification, bool) {
	for _, notification := range state.Notifications {
		if notification.ID == id {
			return notification.Clone(), true
		}
	}
	return models.Notification{}, false
}

func MemberByID(state store.State, id uuid.UUID) (models.Member, bool) {
	return state.PropertyGroup.MemberByID(id)
}

func OnboardingForMember(state store.State, memberID uuid.UUID) (models.GuestOnboarding, bool) {
	for _, record := range state.Onboarding {
		if record.MemberID == memberID {
			return record.Clone(), true
		}
	}
	return models.GuestOnboarding{}, false
}

func filterStays(state store.State, keep func(models.Stay) bool) []models.Stay {
	stays := make([]models.Stay, 0)
	for _, stay := range state.Stays {
		if keep(stay) {
			stays = append(stays, stay.Clone())
		}
	}
	return stays
}

func filterShopping(state store.State, keep func(models.ShoppingItem) bool) []models.ShoppingItem {
	items := make([]models.ShoppingItem, 0)
	for _, item := range state.ShoppingItems {
		if keep(item) {
			items = append(items, item.Clone())
		}
	}
	return items
}

func filterIssues(state store.State, keep func(models.Issue) bool) []models.Issue {
	issues := make([]models.Issue, 0)
	for _, issue := range state.Issues {
		if keep(issue) {
			issues = append(issues, issue.Clone())
		}
	}
	return issues
}
