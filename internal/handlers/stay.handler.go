package handlers

import (
	"errors"

	"rentalos/internal/app"
	stayController "rentalos/internal/controllers/stays"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
)

type StayHandler struct {
	Handler
	stays stayController.StayControllerInterface
	store *store.Store
}

func NewStayHandler(app app.App, router fiber.Router) *StayHandler {
	log := logger.New("handlers").File("stay_handler")
	return &StayHandler{
		stays: app.Controller.Stays,
		store: app.Store,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *StayHandler) Register() {
	stays := h.router.Group("/stays", h.middleware.RequireAuth())

	stays.Get("/", h.listStays)
	stays.Get("/:id", h.getStay)
	stays.Post("/", h.middleware.RequirePermission(models.PermRequestStays), h.createStay)
	stays.Post("/:id/confirm", h.middleware.RequirePermission(models.PermConfirmStays), h.confirmStay)
	stays.Post("/:id/activate", h.middleware.RequirePermission(models.PermManageStays), h.activateStay)
	stays.Post("/:id/complete", h.middleware.RequirePermission(models.PermManageStays), h.completeStay)
	stays.Post("/:id/cancel", h.middleware.RequirePermission(models.PermManageStays), h.cancelStay)
	stays.Patch("/:id/checklists/:kind/items/:itemId", h.toggleChecklistItem)
	stays.Post("/:id/rules-ack", h.acknowledgeRules)
}

// listStays serves the stay views: ?houseId= for one house's schedule,
// ?requested=true for the host review queue.
func (h *StayHandler) listStays(c *fiber.Ctx) error {
	state := h.store.Snapshot()

	if c.QueryBool("requested") {
		return c.JSON(fiber.Map{"stays": queries.RequestedStays(state)})
	}

	if houseID, ok := queryUUID(c, "houseId"); ok {
		return c.JSON(fiber.Map{"stays": queries.StaysForHouse(state, houseID)})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "houseId or requested query parameter is required",
	})
}

func (h *StayHandler) getStay(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	stay, err := h.stays.GetStay(c.UserContext(), id)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) createStay(c *fiber.Ctx) error {
	log := h.log.Function("createStay")

	var request stayController.CreateStayRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	request.CreatedBy = member.ID

	// Hosts may pre-plan stays; guests always go through the request queue
	if request.Status == models.StayPlanned &&
		!member.Role.HasPermission(models.PermManageStays) {
		request.Status = models.StayRequested
	}

	stay, err := h.stays.CreateStay(c.UserContext(), request)
	if err != nil {
		var overlapErr *stayController.OverlapError
		if errors.As(err, &overlapErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":     "Stay overlaps existing bookings",
				"conflicts": overlapErr.Conflicts,
			})
		}
		return stayError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) confirmStay(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	member := middleware.GetMember(c)
	stay, err := h.stays.ConfirmStay(c.UserContext(), id, member.ID)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) activateStay(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	stay, err := h.stays.ActivateStay(c.UserContext(), id)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) completeStay(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	stay, err := h.stays.CompleteStay(c.UserContext(), id)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) cancelStay(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	stay, err := h.stays.CancelStay(c.UserContext(), id)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) toggleChecklistItem(c *fiber.Ctx) error {
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
	stay, err := h.stays.ToggleChecklistItem(
		c.UserContext(),
		id,
		stayController.ChecklistKind(c.Params("kind")),
		itemID,
		member.ID,
		body.Checked,
	)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func (h *StayHandler) acknowledgeRules(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	member := middleware.GetMember(c)
	stay, err := h.stays.AcknowledgeRules(c.UserContext(), id, member.ID)
	if err != nil {
		return stayError(c, err)
	}

	return c.JSON(fiber.Map{"stay": stay})
}

func stayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, stayController.ErrStayNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Stay not found"})
	case errors.Is(err, stayController.ErrHouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "House not found"})
	case errors.Is(err, stayController.ErrChecklistNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Checklist item not found"})
	case errors.Is(err, stayController.ErrInvalidDates),
		errors.Is(err, stayController.ErrInvalidStatus),
		errors.Is(err, stayController.ErrUnknownChecklist):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, stayController.ErrInvalidTransition),
		errors.Is(err, stayController.ErrStayNotConfirmable),
		errors.Is(err, stayController.ErrChecklistInactive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stay request failed"})
	}
}
