package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMTeamRepository is a GORM implementation of TeamRepository.
type GORMTeamRepository struct {
	db *gorm.DB
}

// NewGORMTeamRepository creates a new instance of GORMTeamRepository.
func NewGORMTeamRepository(db *gorm.DB) *GORMTeamRepository {
	return &GORMTeamRepository{
		db: db,
	}
}

// GetAll retrieves all teams, paginated when both limit and offset are set.
func (r *GORMTeamRepository) GetAll(limit, offset int) ([]models.Team, error) {
	teams := []models.Team{}
	query := r.db
	if limit >= 0 && offset >= 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", translate(err))
	}
	return teams, nil
}

// GetByID retrieves a single team by its ID.
func (r *GORMTeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, fmt.Errorf("team with ID %d: %w", id, translate(err))
	}
	return &team, nil
}

// Create inserts a new team.
func (r *GORMTeamRepository) Create(team *models.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing team.
func (r *GORMTeamRepository) Update(team *models.Team) error {
	res := r.db.Save(team)
	if res.Error != nil {
		return fmt.Errorf("failed to update team: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("team with ID %d: %w", team.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a team by its ID.
func (r *GORMTeamRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Team{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete team: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("team with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
