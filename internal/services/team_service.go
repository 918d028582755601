package services

import (
	"footballapi/internal/models"
	"footballapi/internal/repositories"
)

// TeamService handles business logic related to teams.
type TeamService struct {
	repo repositories.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(repo repositories.TeamRepository) *TeamService {
	return &TeamService{
		repo: repo,
	}
}

// GetAllTeams retrieves all teams, paginated when both limit and offset are
// non-negative.
func (s *TeamService) GetAllTeams(limit, offset int) ([]models.Team, error) {
	return s.repo.GetAll(limit, offset)
}

// GetTeamByID retrieves a single team by its ID.
func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	return s.repo.GetByID(id)
}

// CreateTeam creates a new team.
func (s *TeamService) CreateTeam(team *models.Team) error {
	return s.repo.Create(team)
}

// UpdateTeam patches the provided fields of an existing team.
func (s *TeamService) UpdateTeam(id uint, update *models.TeamUpdate) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.TeamName != nil {
		team.TeamName = *update.TeamName
	}
	if update.TeamAKA != nil {
		team.TeamAKA = *update.TeamAKA
	}
	if update.RegionName != nil {
		team.RegionName = *update.RegionName
	}
	if update.Country != nil {
		team.Country = *update.Country
	}
	if update.Manager != nil {
		team.Manager = *update.Manager
	}

	if err := s.repo.Update(team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam deletes a team by its ID.
func (s *TeamService) DeleteTeam(id uint) error {
	return s.repo.Delete(id)
}
