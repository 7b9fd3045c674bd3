package handlers

import (
	"errors"

	"rentalos/internal/app"
	houseController "rentalos/internal/controllers/houses"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DeleteConfirmHeader must carry the id of the house being deleted. Deleting
// a house removes its rooms with it, so the extra echo guards against a stray
// client call.
const DeleteConfirmHeader = "X-Confirm-Delete"

type HouseHandler struct {
	Handler
	houses houseController.HouseControllerInterface
}

func NewHouseHandler(app app.App, router fiber.Router) *HouseHandler {
	log := logger.New("handlers").File("house_handler")
	return &HouseHandler{
		houses: app.Controller.Houses,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HouseHandler) Register() {
	houses := h.router.Group("/houses", h.middleware.RequireAuth())

	houses.Get("/", h.listHouses)
	houses.Get("/:id", h.getHouse)

	manage := houses.Group("/", h.middleware.RequirePermission(models.PermManageHouses))
	manage.Post("/", h.createHouse)
	manage.Put("/:id", h.updateHouse)
	manage.Delete("/:id", h.deleteHouse)
	manage.Post("/:id/rooms", h.addRoom)
	manage.Put("/:id/rooms/:roomId", h.updateRoom)
	manage.Delete("/:id/rooms/:roomId", h.removeRoom)
	manage.Put("/:id/rules", h.updateRules)
}

func (h *HouseHandler) listHouses(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"houses": h.houses.ListHouses(c.UserContext()),
	})
}

func (h *HouseHandler) getHouse(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	house, err := h.houses.GetHouse(c.UserContext(), id)
	if err != nil {
		return houseError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) createHouse(c *fiber.Ctx) error {
	log := h.log.Function("createHouse")

	var request houseController.CreateHouseRequest
	if err := c.BodyParser(&request); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houses.CreateHouse(c.UserContext(), request)
	if err != nil {
		return houseError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) updateHouse(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var request houseController.UpdateHouseRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houses.UpdateHouse(c.UserContext(), id, request)
	if err != nil {
		return houseError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) deleteHouse(c *fiber.Ctx) error {
	log := h.log.Function("deleteHouse")

	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	if c.Get(DeleteConfirmHeader) != id.String() {
		log.Info("delete rejected, missing confirmation header", "houseID", id)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Confirmation header required",
		})
	}

	if err := h.houses.DeleteHouse(c.UserContext(), id); err != nil {
		return houseError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HouseHandler) addRoom(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var request houseController.RoomRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houses.AddRoom(c.UserContext(), id, request)
	if err != nil {
		return houseError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) updateRoom(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	roomID, ok := paramUUID(c, "roomId")
	if !ok {
		return nil
	}

	var request houseController.RoomRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	house, err := h.houses.UpdateRoom(c.UserContext(), id, roomID, request)
	if err != nil {
		return houseError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) removeRoom(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	roomID, ok := paramUUID(c, "roomId")
	if !ok {
		return nil
	}

	house, err := h.houses.RemoveRoom(c.UserContext(), id, roomID)
	if err != nil {
		return houseError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func (h *HouseHandler) updateRules(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		Rules []string `json:"rules"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	house, err := h.houses.UpdateRules(c.UserContext(), id, body.Rules, member.ID)
	if err != nil {
		return houseError(c, err)
	}

	return c.JSON(fiber.Map{"house": house})
}

func houseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, houseController.ErrHouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "House not found"})
	case errors.Is(err, houseController.ErrRoomNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, houseController.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "House name is required"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "House request failed"})
	}
}
