package repositories

import "footballapi/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsernameOrEmail(login string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
