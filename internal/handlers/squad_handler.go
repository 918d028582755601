package handlers

import (
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SquadHandler handles HTTP requests for tournament rosters.
type SquadHandler struct {
	service  *services.SquadService
	validate *validator.Validate
}

// NewSquadHandler creates a new SquadHandler.
func NewSquadHandler(service *services.SquadService) *SquadHandler {
	return &SquadHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the squad routes, all admin-only. The by-team
// routes are registered before /:id so they are not shadowed.
func (h *SquadHandler) RegisterRoutes(router fiber.Router) {
	squadRoutes := router.Group("/squads", middleware.AdminRequired())
	squadRoutes.Get("/", h.HandleGetSquads)
	squadRoutes.Get("/teams/tournaments/:id", h.HandleGetTournamentsByTeam)
	squadRoutes.Get("/teams/:id", h.HandleGetSquadsByTeam)
	squadRoutes.Get("/:id", h.HandleGetSquadByID)
	squadRoutes.Post("/", h.HandleCreateSquad)
	squadRoutes.Patch("/:id", h.HandleUpdateSquad)
	squadRoutes.Delete("/:id", h.HandleDeleteSquad)
}

// HandleGetSquads retrieves all squads, optionally paginated.
func (h *SquadHandler) HandleGetSquads(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	squads, err := h.service.GetAllSquads(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"squads": squads,
	})
}

// HandleGetSquadByID retrieves a single squad entry by its ID.
func (h *SquadHandler) HandleGetSquadByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	squad, err := h.service.GetSquadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"squad": squad,
	})
}

// HandleCreateSquad creates a new squad entry.
func (h *SquadHandler) HandleCreateSquad(c *fiber.Ctx) error {
	var squad models.Squad
	if err := c.BodyParser(&squad); err != nil {
		return invalidBody(c, err)
	}
	squad.ID = 0
	if err := h.validate.Struct(squad); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateSquad(&squad); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"squad": squad,
	})
}

// HandleUpdateSquad patches the provided fields of an existing squad entry.
func (h *SquadHandler) HandleUpdateSquad(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var update models.SquadUpdate
	if err := c.BodyParser(&update); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(update); err != nil {
		return validationFailed(c, err)
	}
	squad, err := h.service.UpdateSquad(id, &update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"squad": squad,
	})
}

// HandleDeleteSquad deletes a squad entry by its ID.
func (h *SquadHandler) HandleDeleteSquad(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteSquad(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Squad deleted successfully",
	})
}

// HandleGetSquadsByTeam retrieves the squad entries for a team. A team with
// no entries yields an empty list, not 404.
func (h *SquadHandler) HandleGetSquadsByTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	squads, err := h.service.GetSquadsByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"squads": squads,
	})
}

// HandleGetTournamentsByTeam retrieves the distinct tournaments a team has
// fielded a squad in.
func (h *SquadHandler) HandleGetTournamentsByTeam(c *fiber.Ctx) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	tournaments, err := h.service.GetTournamentsByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"tournaments": tournaments,
	})
}
