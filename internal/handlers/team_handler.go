package handlers

import (
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TeamHandler handles HTTP requests for teams.
type TeamHandler struct {
	service  *services.TeamService
	validate *validator.Validate
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the team routes, all admin-only.
func (h *TeamHandler) RegisterRoutes(router fiber.Router) {
	teamRoutes := router.Group("/teams", middleware.AdminRequired())
	teamRoutes.Get("/", h.HandleGetTeams)
	teamRoutes.Get("/:id", h.HandleGetTeamByID)
	teamRoutes.Post("/", h.HandleCreateTeam)
	teamRoutes.Patch("/:id", h.HandleUpdateTeam)
	teamRoutes.Delete("/:id", h.HandleDeleteTeam)
}

// HandleGetTeams retrieves all teams, optionally paginated.
func (h *TeamHandler) HandleGetTeams(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	teams, err := h.service.GetAllTeams(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"teams": teams,
	})
}

// HandleGetTeamByID retrieves a single team by its ID.
func (h *TeamHandler) HandleGetTeamByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	team, err := h.service.GetTeamByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"team": team,
	})
}

// HandleCreateTeam creates a new team.
func (h *TeamHandler) HandleCreateTeam(c *fiber.Ctx) error {
	var team models.Team
	if err := c.BodyParser(&team); err != nil {
		return invalidBody(c, err)
	}
	team.ID = 0
	if err := h.validate.Struct(team); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateTeam(&team); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"team": team,
	})
}

// HandleUpdateTeam patches the provided fields of an existing team.
func (h *TeamHandler) HandleUpdateTeam(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var update models.TeamUpdate
	if err := c.BodyParser(&update); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(update); err != nil {
		return validationFailed(c, err)
	}
	team, err := h.service.UpdateTeam(id, &update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"team": team,
	})
}

// HandleDeleteTeam deletes a team by its ID.
func (h *TeamHandler) HandleDeleteTeam(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteTeam(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Team deleted successfully",
	})
}
