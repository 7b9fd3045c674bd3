package models

type NotificationType string

const (
	NotificationStayRequested       NotificationType = "stay_requested"
	NotificationStayConfirmed       NotificationType = "stay_confirmed"
	NotificationChecklistActivated  NotificationType = "checklist_activated"
	NotificationCleaningTaskCreated NotificationType = "cleaning_task_created"
	NotificationIssueReported       NotificationType = "issue_reported"
	NotificationShoppingSuggested   NotificationType = "shopping_suggested"
)

// Notification is addressed either to everyone (nil recipient role) or to a
// specific role.
type Notification struct {
	Base
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Read          bool             `json:"read"`
	RecipientRole *Role            `json:"recipientRole,omitempty"`
}

func (n Notification) Clone() Notification {
	out := n
	if n.RecipientRole != nil {
		role := *n.RecipientRole
		out.RecipientRole = &role
	}
	return out
}

// VisibleToRole reports whether the notification addresses the given role
func (n *Notification) VisibleToRole(role Role) bool {
	return n.RecipientRole == nil || *n.RecipientRole == role
}
