package repositories

import "footballapi/internal/models"

// SquadRepository defines the interface for squad (roster entry) data access.
// Reads resolve the Team, Player and Tournament associations with inner
// joins, so an entry whose related row is gone is excluded rather than
// returned half-empty.
type SquadRepository interface {
	GetAll(limit, offset int) ([]models.Squad, error)
	GetByID(id uint) (*models.Squad, error)
	Create(squad *models.Squad) error
	Update(squad *models.Squad) error
	Delete(id uint) error
	GetByTeam(teamID uint) ([]models.Squad, error)
	GetTournamentsByTeam(teamID uint) ([]models.Tournament, error)
}
