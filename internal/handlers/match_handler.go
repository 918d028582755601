package handlers

import (
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MatchHandler handles HTTP requests for matches.
type MatchHandler struct {
	service  *services.MatchService
	validate *validator.Validate
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the match routes, all admin-only. The filtered
// routes are registered before /:id so they are not shadowed.
func (h *MatchHandler) RegisterRoutes(router fiber.Router) {
	matchRoutes := router.Group("/matches", middleware.AdminRequired())
	matchRoutes.Get("/", h.HandleGetMatches)
	matchRoutes.Get("/tournaments/:id", h.HandleGetMatchesByTournament)
	matchRoutes.Get("/teams/:id", h.HandleGetMatchesByTeam)
	matchRoutes.Get("/:id", h.HandleGetMatchByID)
	matchRoutes.Post("/", h.HandleCreateMatch)
	matchRoutes.Patch("/:id", h.HandleUpdateMatch)
	matchRoutes.Delete("/:id", h.HandleDeleteMatch)
}

// HandleGetMatches retrieves all matches, optionally paginated.
func (h *MatchHandler) HandleGetMatches(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	matches, err := h.service.GetAllMatches(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"matches": matches,
	})
}

// HandleGetMatchByID retrieves a single match by its ID.
func (h *MatchHandler) HandleGetMatchByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	match, err := h.service.GetMatchByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"match": match,
	})
}

// HandleCreateMatch creates a new match.
func (h *MatchHandler) HandleCreateMatch(c *fiber.Ctx) error {
	var match models.Match
	if err := c.BodyParser(&match); err != nil {
		return invalidBody(c, err)
	}
	match.ID = 0
	if err := h.validate.Struct(match); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateMatch(&match); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"match": match,
	})
}

// HandleUpdateMatch patches the provided fields of an existing match.
func (h *MatchHandler) HandleUpdateMatch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var update models.MatchUpdate
	if err := c.BodyParser(&update); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(update); err != nil {
		return validationFailed(c, err)
	}
	match, err := h.service.UpdateMatch(id, &update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"match": match,
	})
}

// HandleDeleteMatch deletes a match by its ID.
func (h *MatchHandler) HandleDeleteMatch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteMatch(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Match deleted successfully",
	})
}

// HandleGetMatchesByTournament retrieves the matches of a tournament.
func (h *MatchHandler) HandleGetMatchesByTournament(c *fiber.Ctx) error {
	tournamentID, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	matches, err := h.service.GetMatchesByTournament(tournamentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"matches": matches,
	})
}

// HandleGetMatchesByTeam retrieves the matches a team played in, home or
// away. A team with no matches yields an empty list, not 404.
func (h *MatchHandler) HandleGetMatchesByTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	matches, err := h.service.GetMatchesByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"matches": matches,
	})
}
