package handlers

import (
	"errors"

	"rentalos/internal/app"
	issueController "rentalos/internal/controllers/issues"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IssueHandler struct {
	Handler
	issues issueController.IssueControllerInterface
	store  *store.Store
}

func NewIssueHandler(app app.App, router fiber.Router) *IssueHandler {
	log := logger.New("handlers").File("issue_handler")
	return &IssueHandler{
		issues: app.Controller.Issues,
		store:  app.Store,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *IssueHandler) Register() {
	issues := h.router.Group("/issues", h.middleware.RequireAuth())

	issues.Get("/", h.listIssues)
	issues.Get("/:id", h.getIssue)
	issues.Post("/", h.middleware.RequirePermission(models.PermReportIssues), h.reportIssue)
	issues.Post("/:id/assign", h.middleware.RequirePermission(models.PermManageIssues), h.assignIssue)
	issues.Patch("/:id/status", h.middleware.RequirePermission(models.PermManageIssues), h.updateStatus)
}

// listIssues serves the issue views for a house; ?open=true excludes fixed
// issues.
func (h *IssueHandler) listIssues(c *fiber.Ctx) error {
	houseID, ok := queryUUID(c, "houseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "houseId query parameter is required",
		})
	}

	state := h.store.Snapshot()
	if c.QueryBool("open") {
		return c.JSON(fiber.Map{"issues": queries.OpenIssuesForHouse(state, houseID)})
	}
	return c.JSON(fiber.Map{"issues": queries.IssuesForHouse(state, houseID)})
}

func (h *IssueHandler) getIssue(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	issue, err := h.issues.GetIssue(c.UserContext(), id)
	if err != nil {
		return issueError(c, err)
	}

	return c.JSON(fiber.Map{"issue": issue})
}

func (h *IssueHandler) reportIssue(c *fiber.Ctx) error {
	log := h.log.Function("reportIssue")

	var request issueController.ReportIssueRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	request.ReportedBy = member.ID

	issue, err := h.issues.ReportIssue(c.UserContext(), request)
	if err != nil {
		return issueError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"issue": issue})
}

func (h *IssueHandler) assignIssue(c *fiber.Ctx) error {
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

	issue, err := h.issues.AssignIssue(c.UserContext(), id, body.MemberID)
	if err != nil {
		return issueError(c, err)
	}

	return c.JSON(fiber.Map{"issue": issue})
}

func (h *IssueHandler) updateStatus(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		Status models.IssueStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	issue, err := h.issues.UpdateStatus(c.UserContext(), id, body.Status, member.ID)
	if err != nil {
		return issueError(c, err)
	}

	return c.JSON(fiber.Map{"issue": issue})
}

func issueError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, issueController.ErrIssueNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
	case errors.Is(err, issueController.ErrHouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "House not found"})
	case errors.Is(err, issueController.ErrRoomNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, issueController.ErrTitleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Issue title is required"})
	case errors.Is(err, issueController.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Issue request failed"})
	}
}
