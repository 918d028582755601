package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email or username comes back as
// ErrConflict from the store's unique indexes, with no pre-check.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

// GetByUsernameOrEmail retrieves a user whose username or email matches the
// given login, for sign-in with either identifier.
func (r *GORMUserRepository) GetByUsernameOrEmail(login string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ? OR email = ?", login, login).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", login, translate(err))
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("user with ID %d: %w", id, translate(err))
	}
	return &user, nil
}
