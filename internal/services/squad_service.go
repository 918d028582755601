package services

import (
	"errors"

	"footballapi/internal/models"
	"footballapi/internal/repositories"
)

// SquadService handles business logic related to tournament rosters.
type SquadService struct {
	repo           repositories.SquadRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
}

// NewSquadService creates a new SquadService.
func NewSquadService(
	repo repositories.SquadRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
) *SquadService {
	return &SquadService{
		repo:           repo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
	}
}

// checkReferences verifies every referenced row exists before a write. A
// dangling foreign key is a validation fault, not an internal error.
func (s *SquadService) checkReferences(squad *models.Squad) error {
	fields := models.ValidationErrors{}
	if _, err := s.teamRepo.GetByID(squad.TeamID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_team"] = "referenced team does not exist"
	}
	if _, err := s.playerRepo.GetByID(squad.PlayerID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_player"] = "referenced player does not exist"
	}
	if _, err := s.tournamentRepo.GetByID(squad.TournamentID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_tournament"] = "referenced tournament does not exist"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// GetAllSquads retrieves all squads with their associations, paginated when
// both limit and offset are non-negative.
func (s *SquadService) GetAllSquads(limit, offset int) ([]models.Squad, error) {
	return s.repo.GetAll(limit, offset)
}

// GetSquadByID retrieves a single squad by its ID.
func (s *SquadService) GetSquadByID(id uint) (*models.Squad, error) {
	return s.repo.GetByID(id)
}

// CreateSquad creates a new squad entry after checking its references.
func (s *SquadService) CreateSquad(squad *models.Squad) error {
	if err := s.checkReferences(squad); err != nil {
		return err
	}
	return s.repo.Create(squad)
}

// UpdateSquad patches the provided fields of an existing squad entry,
// re-checking references when any foreign key changed.
func (s *SquadService) UpdateSquad(id uint, update *models.SquadUpdate) (*models.Squad, error) {
	squad, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Position != nil {
		squad.Position = *update.Position
	}
	if update.Number != nil {
		squad.Number = *update.Number
	}
	refsChanged := update.TeamID != nil || update.PlayerID != nil || update.TournamentID != nil
	if update.TeamID != nil {
		squad.TeamID = *update.TeamID
	}
	if update.PlayerID != nil {
		squad.PlayerID = *update.PlayerID
	}
	if update.TournamentID != nil {
		squad.TournamentID = *update.TournamentID
	}
	if refsChanged {
		if err := s.checkReferences(squad); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(squad); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// DeleteSquad deletes a squad entry by its ID.
func (s *SquadService) DeleteSquad(id uint) error {
	return s.repo.Delete(id)
}

// GetSquadsByTeam retrieves all squad entries for a team.
func (s *SquadService) GetSquadsByTeam(teamID uint) ([]models.Squad, error) {
	return s.repo.GetByTeam(teamID)
}

// GetTournamentsByTeam retrieves the distinct tournaments a team has fielded
// a squad in.
func (s *SquadService) GetTournamentsByTeam(teamID uint) ([]models.Tournament, error) {
	return s.repo.GetTournamentsByTeam(teamID)
}
