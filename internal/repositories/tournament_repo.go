package repositories

import "footballapi/internal/models"

// TournamentRepository defines the interface for tournament data access.
type TournamentRepository interface {
	GetAll(limit, offset int) ([]models.Tournament, error)
	GetByID(id uint) (*models.Tournament, error)
	Create(tournament *models.Tournament) error
	Update(tournament *models.Tournament) error
	Delete(id uint) error
}
