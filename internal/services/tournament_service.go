package services

import (
	"footballapi/internal/models"
	"footballapi/internal/repositories"
)

// TournamentService handles business logic related to tournaments.
type TournamentService struct {
	repo repositories.TournamentRepository
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(repo repositories.TournamentRepository) *TournamentService {
	return &TournamentService{
		repo: repo,
	}
}

// GetAllTournaments retrieves all tournaments, paginated when both limit and
// offset are non-negative.
func (s *TournamentService) GetAllTournaments(limit, offset int) ([]models.Tournament, error) {
	return s.repo.GetAll(limit, offset)
}

// GetTournamentByID retrieves a single tournament by its ID.
func (s *TournamentService) GetTournamentByID(id uint) (*models.Tournament, error) {
	return s.repo.GetByID(id)
}

// CreateTournament creates a new tournament.
func (s *TournamentService) CreateTournament(tournament *models.Tournament) error {
	return s.repo.Create(tournament)
}

// UpdateTournament replaces all fields of an existing tournament.
func (s *TournamentService) UpdateTournament(id uint, input *models.Tournament) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tournament.TournamentName = input.TournamentName
	tournament.Year = input.Year
	tournament.StartDate = input.StartDate
	tournament.EndDate = input.EndDate
	tournament.Winner = input.Winner
	tournament.TypeTournament = input.TypeTournament

	if err := s.repo.Update(tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// DeleteTournament deletes a tournament by its ID.
func (s *TournamentService) DeleteTournament(id uint) error {
	return s.repo.Delete(id)
}
