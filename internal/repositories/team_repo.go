package repositories

import "footballapi/internal/models"

// TeamRepository defines the interface for team data access.
type TeamRepository interface {
	GetAll(limit, offset int) ([]models.Team, error)
	GetByID(id uint) (*models.Team, error)
	Create(team *models.Team) error
	Update(team *models.Team) error
	Delete(id uint) error
}
