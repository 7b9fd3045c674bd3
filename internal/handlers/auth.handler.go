package handlers

import (
	"errors"

	"rentalos/internal/app"
	authController "rentalos/internal/controllers/auth"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Handler
	auth authController.AuthControllerInterface
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		auth: app.Controller.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")

	// Public endpoints: picking a member is the demo login
	auth.Get("/members", h.listMembers)
	auth.Post("/session", h.createSession)

	protected := auth.Group("/", h.middleware.RequireAuth())
	protected.Get("/me", h.getCurrentMember)
	protected.Get("/onboarding", h.getOnboarding)
	protected.Post("/onboarding/steps", h.completeOnboardingStep)
	protected.Post("/onboarding/rules-ack", h.acknowledgeOnboardingRules)
}

func (h *AuthHandler) listMembers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"members": h.auth.ListMembers(c.UserContext()),
	})
}

func (h *AuthHandler) createSession(c *fiber.Ctx) error {
	log := h.log.Function("createSession")

	var body struct {
		MemberID uuid.UUID `json:"memberId"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.auth.CreateSession(c.UserContext(), body.MemberID)
	if err != nil {
		if errors.Is(err, authController.ErrMemberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.JSON(session)
}

func (h *AuthHandler) getCurrentMember(c *fiber.Ctx) error {
	member := middleware.GetMember(c)
	if member == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"member": member.ToProfile(),
	})
}

func (h *AuthHandler) getOnboarding(c *fiber.Ctx) error {
	member := middleware.GetMember(c)

	record, err := h.auth.GetOnboarding(c.UserContext(), member.ID)
	if err != nil {
		return onboardingError(c, err)
	}

	return c.JSON(fiber.Map{"onboarding": record})
}

func (h *AuthHandler) completeOnboardingStep(c *fiber.Ctx) error {
	log := h.log.Function("completeOnboardingStep")
	member := middleware.GetMember(c)

	var body struct {
		Step string `json:"step"`
	}
	if err := c.BodyParser(&body); err != nil || body.Step == "" {
		log.Info("invalid request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Step is required",
		})
	}

	record, err := h.auth.CompleteOnboardingStep(c.UserContext(), member.ID, body.Step)
	if err != nil {
		return onboardingError(c, err)
	}

	return c.JSON(fiber.Map{"onboarding": record})
}

func (h *AuthHandler) acknowledgeOnboardingRules(c *fiber.Ctx) error {
	member := middleware.GetMember(c)

	record, err := h.auth.AcknowledgeOnboardingRules(c.UserContext(), member.ID)
	if err != nil {
		return onboardingError(c, err)
	}

	return c.JSON(fiber.Map{"onboarding": record})
}

func onboardingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, authController.ErrNotAGuest):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Onboarding applies to guests only",
		})
	case errors.Is(err, authController.ErrMemberNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Onboarding request failed",
		})
	}
}
