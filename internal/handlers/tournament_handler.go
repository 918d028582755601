package handlers

import (
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TournamentHandler handles HTTP requests for tournaments.
type TournamentHandler struct {
	service  *services.TournamentService
	validate *validator.Validate
}

// NewTournamentHandler creates a new TournamentHandler.
func NewTournamentHandler(service *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tournament routes. Reads are public; writes
// are admin-only.
func (h *TournamentHandler) RegisterRoutes(router fiber.Router) {
	tournamentRoutes := router.Group("/tournaments")
	tournamentRoutes.Get("/", h.HandleGetTournaments)
	tournamentRoutes.Get("/:id", h.HandleGetTournamentByID)
	tournamentRoutes.Post("/", middleware.AdminRequired(), h.HandleCreateTournament)
	tournamentRoutes.Put("/:id", middleware.AdminRequired(), h.HandleUpdateTournament)
	tournamentRoutes.Delete("/:id", middleware.AdminRequired(), h.HandleDeleteTournament)
}

// HandleGetTournaments retrieves all tournaments, optionally paginated.
func (h *TournamentHandler) HandleGetTournaments(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	tournaments, err := h.service.GetAllTournaments(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tournaments": tournaments,
	})
}

// HandleGetTournamentByID retrieves a single tournament by its ID.
func (h *TournamentHandler) HandleGetTournamentByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	tournament, err := h.service.GetTournamentByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tournament": tournament,
	})
}

// HandleCreateTournament creates a new tournament.
func (h *TournamentHandler) HandleCreateTournament(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := c.BodyParser(&tournament); err != nil {
		return invalidBody(c, err)
	}
	tournament.ID = 0
	if err := h.validate.Struct(tournament); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateTournament(&tournament); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"tournament": tournament,
	})
}

// HandleUpdateTournament replaces all fields of an existing tournament.
func (h *TournamentHandler) HandleUpdateTournament(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var input models.Tournament
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}
	tournament, err := h.service.UpdateTournament(id, &input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tournament": tournament,
	})
}

// HandleDeleteTournament deletes a tournament by its ID.
func (h *TournamentHandler) HandleDeleteTournament(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteTournament(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Tournament deleted successfully",
	})
}
