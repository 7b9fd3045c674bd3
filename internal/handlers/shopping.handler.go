package handlers

import (
	"errors"

	"rentalos/internal/app"
	shoppingController "rentalos/internal/controllers/shopping"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShoppingHandler struct {
	Handler
	shopping shoppingController.ShoppingControllerInterface
	store    *store.Store
}

func NewShoppingHandler(app app.App, router fiber.Router) *ShoppingHandler {
	log := logger.New("handlers").File("shopping_handler")
	return &ShoppingHandler{
		shopping: app.Controller.Shopping,
		store:    app.Store,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ShoppingHandler) Register() {
	shopping := h.router.Group("/shopping", h.middleware.RequireAuth())

	shopping.Get("/", h.listItems)
	shopping.Get("/suggestions", h.listSuggestions)
	shopping.Post("/", h.addItem)
	shopping.Post("/:id/approve", h.middleware.RequirePermission(models.PermApproveShopping), h.approveItem)
	shopping.Post("/:id/reject", h.middleware.RequirePermission(models.PermApproveShopping), h.rejectItem)
	shopping.Post("/:id/assign", h.middleware.RequirePermission(models.PermAddShopping), h.assignItem)
	shopping.Delete("/:id", h.middleware.RequirePermission(models.PermAddShopping), h.removeItem)
}

// listItems serves the standard view: standard and approved items in
// priority order.
func (h *ShoppingHandler) listItems(c *fiber.Ctx) error {
	houseID, ok := queryUUID(c, "houseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "houseId query parameter is required",
		})
	}

	return c.JSON(fiber.Map{
		"items": queries.ShoppingItemsForHouse(h.store.Snapshot(), houseID),
	})
}

func (h *ShoppingHandler) listSuggestions(c *fiber.Ctx) error {
	houseID, ok := queryUUID(c, "houseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "houseId query parameter is required",
		})
	}

	return c.JSON(fiber.Map{
		"items": queries.SuggestedShoppingItemsForHouse(h.store.Snapshot(), houseID),
	})
}

func (h *ShoppingHandler) addItem(c *fiber.Ctx) error {
	log := h.log.Function("addItem")

	member := middleware.GetMember(c)
	if !member.Role.HasPermission(models.PermAddShopping) &&
		!member.Role.HasPermission(models.PermSuggestShopping) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Permission denied",
		})
	}

	var request shoppingController.AddItemRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	request.AddedBy = member.ID
	request.AddedByRole = member.Role

	item, err := h.shopping.AddItem(c.UserContext(), request)
	if err != nil {
		return shoppingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}

func (h *ShoppingHandler) approveItem(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	item, err := h.shopping.ApproveItem(c.UserContext(), id)
	if err != nil {
		return shoppingError(c, err)
	}

	return c.JSON(fiber.Map{"item": item})
}

func (h *ShoppingHandler) rejectItem(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	item, err := h.shopping.RejectItem(c.UserContext(), id)
	if err != nil {
		return shoppingError(c, err)
	}

	return c.JSON(fiber.Map{"item": item})
}

func (h *ShoppingHandler) assignItem(c *fiber.Ctx) error {
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

	item, err := h.shopping.AssignItem(c.UserContext(), id, body.MemberID)
	if err != nil {
		return shoppingError(c, err)
	}

	return c.JSON(fiber.Map{"item": item})
}

func (h *ShoppingHandler) removeItem(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.shopping.RemoveItem(c.UserContext(), id); err != nil {
		return shoppingError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func shoppingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, shoppingController.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shopping item not found"})
	case errors.Is(err, shoppingController.ErrHouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "House not found"})
	case errors.Is(err, shoppingController.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Item name is required"})
	case errors.Is(err, shoppingController.ErrNotSuggested):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Shopping request failed"})
	}
}
