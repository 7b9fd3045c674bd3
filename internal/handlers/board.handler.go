package handlers

import (
	"errors"

	"rentalos/internal/app"
	boardController "rentalos/internal/controllers/board"
	"rentalos/internal/handlers/middleware"
	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BoardHandler struct {
	Handler
	board boardController.BoardControllerInterface
	store *store.Store
}

func NewBoardHandler(app app.App, router fiber.Router) *BoardHandler {
	log := logger.New("handlers").File("board_handler")
	return &BoardHandler{
		board: app.Controller.Board,
		store: app.Store,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *BoardHandler) Register() {
	board := h.router.Group("/board", h.middleware.RequireAuth())

	board.Get("/", h.listPosts)
	board.Post("/", h.middleware.RequirePermission(models.PermPostBoard), h.createPost)
	board.Put("/:id", h.middleware.RequirePermission(models.PermPostBoard), h.updatePost)
	board.Post("/:id/pin", h.middleware.RequirePermission(models.PermManageHouses), h.setPinned)
	board.Delete("/:id", h.middleware.RequirePermission(models.PermManageHouses), h.deletePost)
}

func (h *BoardHandler) listPosts(c *fiber.Ctx) error {
	houseID, ok := queryUUID(c, "houseId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "houseId query parameter is required",
		})
	}

	return c.JSON(fiber.Map{
		"posts": queries.BoardPostsForHouse(h.store.Snapshot(), houseID),
	})
}

func (h *BoardHandler) createPost(c *fiber.Ctx) error {
	log := h.log.Function("createPost")

	var body struct {
		HouseID uuid.UUID `json:"houseId"`
		Content string    `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	post, err := h.board.CreatePost(c.UserContext(), body.HouseID, member.ID, body.Content)
	if err != nil {
		return boardError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

func (h *BoardHandler) updatePost(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	member := middleware.GetMember(c)
	post, err := h.board.UpdatePost(c.UserContext(), id, member.ID, body.Content)
	if err != nil {
		return boardError(c, err)
	}

	return c.JSON(fiber.Map{"post": post})
}

func (h *BoardHandler) setPinned(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	var body struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := h.board.SetPinned(c.UserContext(), id, body.Pinned)
	if err != nil {
		return boardError(c, err)
	}

	return c.JSON(fiber.Map{"post": post})
}

func (h *BoardHandler) deletePost(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}

	if err := h.board.DeletePost(c.UserContext(), id); err != nil {
		return boardError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func boardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, boardController.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Board post not found"})
	case errors.Is(err, boardController.ErrHouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "House not found"})
	case errors.Is(err, boardController.ErrContentRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Post content is required"})
	case errors.Is(err, boardController.ErrNotAuthor):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the author can edit a post"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Board request failed"})
	}
}
