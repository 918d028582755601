package repositories

import "footballapi/internal/models"

// PlayerRepository defines the interface for player data access.
// GetAll paginates only when both limit and offset are non-negative.
type PlayerRepository interface {
	GetAll(limit, offset int) ([]models.Player, error)
	GetByID(id uint) (*models.Player, error)
	Create(player *models.Player) error
	Update(player *models.Player) error
	Delete(id uint) error
}
