package handlers

import (
	"rentalos/internal/app"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/services"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
)

// ResetConfirmHeader must carry ResetConfirmValue before the wipe runs
const (
	ResetConfirmHeader = "X-Confirm-Reset"
	ResetConfirmValue  = "clear-all-data"
)

type AdminHandler struct {
	Handler
	store     *store.Store
	scheduler *services.SchedulerService
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		store:     app.Store,
		scheduler: app.Service.Scheduler,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group(
		"/admin",
		h.middleware.RequireAuth(),
		h.middleware.RequirePermission(models.PermManageData),
	)

	admin.Post("/reset", h.resetState)
	admin.Post("/jobs/:name/trigger", h.triggerJob)
}

// resetState wipes all domain data. The confirmation header keeps a stray
// client call from destroying the dataset; the next startup reseeds the demo
// data.
func (h *AdminHandler) resetState(c *fiber.Ctx) error {
	log := h.log.Function("resetState")

	if c.Get(ResetConfirmHeader) != ResetConfirmValue {
		log.Info("reset rejected, missing confirmation header")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Confirmation header required",
		})
	}

	if err := h.store.Reset(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset state",
		})
	}

	log.Info("domain state reset")
	return c.JSON(fiber.Map{"status": "reset"})
}

func (h *AdminHandler) triggerJob(c *fiber.Ctx) error {
	log := h.log.Function("triggerJob")

	name := c.Params("name")
	if err := h.scheduler.TriggerJobByName(c.UserContext(), name); err != nil {
		log.Info("job trigger failed", "job", name, "error", err.Error())
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.JSON(fiber.Map{"status": "triggered", "job": name})
}
