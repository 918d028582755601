package handlers

import (
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PlayerHandler handles HTTP requests for players.
type PlayerHandler struct {
	service  *services.PlayerService
	validate *validator.Validate
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the player routes, all admin-only.
func (h *PlayerHandler) RegisterRoutes(router fiber.Router) {
	playerRoutes := router.Group("/players", middleware.AdminRequired())
	playerRoutes.Get("/", h.HandleGetPlayers)
	playerRoutes.Get("/:id", h.HandleGetPlayerByID)
	playerRoutes.Post("/", h.HandleCreatePlayer)
	playerRoutes.Put("/:id", h.HandleUpdatePlayer)
	playerRoutes.Delete("/:id", h.HandleDeletePlayer)
}

// HandleGetPlayers retrieves all players, optionally paginated.
func (h *PlayerHandler) HandleGetPlayers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	players, err := h.service.GetAllPlayers(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"players": players,
	})
}

// HandleGetPlayerByID retrieves a single player by its ID.
func (h *PlayerHandler) HandleGetPlayerByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	player, err := h.service.GetPlayerByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"player": player,
	})
}

// HandleCreatePlayer creates a new player.
func (h *PlayerHandler) HandleCreatePlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := c.BodyParser(&player); err != nil {
		return invalidBody(c, err)
	}
	player.ID = 0
	if err := h.validate.Struct(player); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreatePlayer(&player); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"player": player,
	})
}

// HandleUpdatePlayer replaces all fields of an existing player.
func (h *PlayerHandler) HandleUpdatePlayer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var input models.Player
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}
	player, err := h.service.UpdatePlayer(id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"player": player,
	})
}

// HandleDeletePlayer deletes a player by its ID.
func (h *PlayerHandler) HandleDeletePlayer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeletePlayer(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Player deleted successfully",
	})
}
