package handlers

import (
	"errors"

	"rentalos/internal/app"
	cleaningController "rentalos/internal/controllers/cleaning"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CleaningHandler struct {
	Handler
	cleaning cleaningController.CleaningControllerInterface
	store    *store.Store
}

func NewCleaningHandler(app app.App, router fiber.Router) *CleaningHandler {
	log := logger.New("handlers").File("cleaning_handler")
	return &CleaningHandler{
		cleaning: app.Controller.Cleaning,
		store:    app.Store,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CleaningHandler) Register() {
	cleaning := h.router.Group("/cleaning", h.middleware.RequireAuth())

	cleaning.Get("/", h.listTasks)
	cleaning.Get("/:id", h.getTask)
	cleaning.Post("/:id/assign", h.middleware.RequirePermission(models.PermManageCleaning), h.assignTask)
	cleaning.Patch("/:id/items/:itemId", h.middleware.RequirePermission(models.PermManageCleaning), h.toggleItem)
	cleaning.Post("/:id/issues", h.middleware.RequirePermission(models.PermManageCleaning), h.linkIssue)
}

// listTasks serves the cleaner work queue: ?pending=true across all houses,
// or a house's full task history.
func (h *CleaningHandler) listTasks(c *fiber.Ctx) error {
	state := h.store.Snapshot()

	if c.QueryBool("pending") {
		return c.JSON(fiber.Map{"tasks": queries.PendingCleaningTasks(state)})
	}

	if houseID, ok := queryUUID(c, "houseId"); ok {
		return c.JSON(fiber.Map{"tasks": queries.CleaningTasksForHouse(state, houseID)})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "houseId or pending query parameter is required",
	})
}

func (h *CleaningHandler) getTask(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	task, err := h.cleaning.GetTask(c.UserContext(), id)
	if err != nil {
		return cleaningError(c, err)
	}

	return c.JSON(fiber.Map{"task": task})
}

func (h *CleaningHandler) assignTask(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		MemberID uuid.UUID `json:"memberId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.cleaning.AssignTask(c.UserContext(), id, body.MemberID)
	if err != nil {
		return cleaningError(c, err)
	}

	return c.JSON(fiber.Map{"task": task})
}

func (h *CleaningHandler) toggleItem(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	itemID, ok := paramUUID(c, "itemId")
	if !ok {
		return nil
	}

	var body struct {
		Checked bool `json:"checked"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	task, err := h.cleaning.ToggleChecklistItem(c.UserContext(), id, itemID, member.ID, body.Checked)
	if err != nil {
		return cleaningError(c, err)
	}

	return c.JSON(fiber.Map{"task": task})
}

func (h *CleaningHandler) linkIssue(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		IssueID uuid.UUID `json:"issueId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.cleaning.LinkIssue(c.UserContext(), id, body.IssueID)
	if err != nil {
		return cleaningError(c, err)
	}

	return c.JSON(fiber.Map{"task": task})
}

func cleaningError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, cleaningController.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cleaning task not found"})
	case errors.Is(err, cleaningController.ErrIssueNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
	case errors.Is(err, cleaningController.ErrChecklistNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Checklist item not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cleaning request failed"})
	}
}
