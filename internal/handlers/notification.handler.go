package handlers

import (
	"errors"

	"rentalos/internal/app"
	notificationController "rentalos/internal/controllers/notifications"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	Handler
	notifications notificationController.NotificationControllerInterface
}

func NewNotificationHandler(app app.App, router fiber.Router) *NotificationHandler {
	log := logger.New("handlers").File("notification_handler")
	return &NotificationHandler{
		notifications: app.Controller.Notifications,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *NotificationHandler) Register() {
	notifications := h.router.Group("/notifications", h.middleware.RequireAuth())

	notifications.Get("/", h.listNotifications)
	notifications.Post("/read-all", h.markAllRead)
	notifications.Post("/:id/read", h.markRead)
}

// listNotifications returns notifications addressed to the member's role
func (h *NotificationHandler) listNotifications(c *fiber.Ctx) error {
	member := middleware.GetMember(c)

	return c.JSON(fiber.Map{
		"notifications": h.notifications.ListForRole(c.UserContext(), member.Role),
	})
}

func (h *NotificationHandler) markRead(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	notification, err := h.notifications.MarkRead(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, notificationController.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Notification request failed",
		})
	}

	return c.JSON(fiber.Map{"notification": notification})
}

func (h *NotificationHandler) markAllRead(c *fiber.Ctx) error {
	member := middleware.GetMember(c)

	count := h.notifications.MarkAllRead(c.UserContext(), member.Role)
	return c.JSON(fiber.Map{"marked": count})
}
