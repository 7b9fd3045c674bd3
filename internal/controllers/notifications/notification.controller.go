package notificationController

import (
	"context"
	"errors"

	"rentalos/internal/events"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationControllerInterface interface {
	Push(ctx context.Context, notificationType models.NotificationType, title, message string, recipientRole *models.Role) models.Notification
	MarkRead(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, role models.Role) int
	ListForRole(ctx context.Context, role models.Role) []models.Notification
}

type NotificationController struct {
	store    *store.Store
	eventBus *events.EventBus
	log      logger.Logger
}

func New(domainStore *store.Store, eventBus *events.EventBus) NotificationControllerInterface {
	return &NotificationController{
		store:    domainStore,
		eventBus: eventBus,
		log:      logger.New("notificationController"),
	}
}

// Push stores a notification and fans it out on the event bus. Notification
// creation always happens here, never inside the reducer.
func (nc *NotificationController) Push(
	ctx context.Context,
	notificationType models.NotificationType,
	title, message string,
	recipientRole *models.Role,
) models.Notification {
	log := nc.log.Function("Push")

	notification := models.Notification{
		Base:          models.NewBase(),
		Type:          notificationType,
		Title:         title,
		Message:       message,
		RecipientRole: recipientRole,
	}

	nc.store.Dispatch(store.UpsertNotification(notification))

	event := events.Event{
		Type: events.NOTIFICATION_CREATED,
		Data: map[string]any{
			"notificationId": notification.ID.String(),
			"type":           string(notificationType),
			"title":          title,
			"message":        message,
		},
	}
	if recipientRole != nil {
		event.Data["recipientRole"] = string(*recipientRole)
	}

	if err := nc.eventBus.Publish(events.NOTIFICATION_CHANNEL, event); err != nil {
		log.Warn("failed to publish notification event", "notificationID", notification.ID, "error", err)
	}

	return notification
}

func (nc *NotificationController) MarkRead(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	log := nc.log.Function("MarkRead")

	state := nc.store.Snapshot()
	notification, found := queries.NotificationByID(state, id)
	if !found {
		return nil, log.Err("notification not found", ErrNotificationNotFound, "notificationID", id)
	}

	notification.Read = true
	notification.Touch()
	nc.store.Dispatch(store.UpsertNotification(notification))

	return &notification, nil
}

// MarkAllRead marks every notification visible to the role and returns how
// many changed
func (nc *NotificationController) MarkAllRead(ctx context.Context, role models.Role) int {
	state := nc.store.Snapshot()

	actions := make([]store.Action, 0)
	for _, notification := range queries.UnreadNotificationsForRole(state, role) {
		notification.Read = true
		notification.Touch()
		actions = append(actions, store.UpsertNotification(notification))
	}

	if len(actions) > 0 {
		nc.store.Dispatch(actions...)
	}

	return len(actions)
}

func (nc *NotificationController) ListForRole(ctx context.Context, role models.Role) []models.Notification {
	return queries.NotificationsForRole(nc.store.Snapshot(), role)
}
