package repositories

import "footballapi/internal/models"

// MatchRepository defines the interface for match data access. Reads resolve
// the Tournament and both Team roles (home/away) with inner joins.
type MatchRepository interface {
	GetAll(limit, offset int) ([]models.Match, error)
	GetByID(id uint) (*models.Match, error)
	Create(match *models.Match) error
	Update(match *models.Match) error
	Delete(id uint) error
	GetByTournament(tournamentID uint) ([]models.Match, error)
	GetByTeam(teamID uint) ([]models.Match, error)
}
