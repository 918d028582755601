package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMPlayerRepository is a GORM implementation of PlayerRepository.
type GORMPlayerRepository struct {
	db *gorm.DB
}

// NewGORMPlayerRepository creates a new instance of GORMPlayerRepository.
func NewGORMPlayerRepository(db *gorm.DB) *GORMPlayerRepository {
	return &GORMPlayerRepository{
		db: db,
	}
}

// GetAll retrieves all players, paginated when both limit and offset are set.
func (r *GORMPlayerRepository) GetAll(limit, offset int) ([]models.Player, error) {
	players := []models.Player{}
	query := r.db
	if limit >= 0 && offset >= 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", translate(err))
	}
	return players, nil
}

// GetByID retrieves a single player by its ID.
func (r *GORMPlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, id).Error; err != nil {
		return nil, fmt.Errorf("player with ID %d: %w", id, translate(err))
	}
	return &player, nil
}

// Create inserts a new player.
func (r *GORMPlayerRepository) Create(player *models.Player) error {
	if err := r.db.Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing player.
func (r *GORMPlayerRepository) Update(player *models.Player) error {
	res := r.db.Save(player)
	if res.Error != nil {
		return fmt.Errorf("failed to update player: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("player with ID %d: %w", player.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a player by its ID.
func (r *GORMPlayerRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Player{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete player: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("player with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
