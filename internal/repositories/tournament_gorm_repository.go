package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMTournamentRepository is a GORM implementation of TournamentRepository.
type GORMTournamentRepository struct {
	db *gorm.DB
}

// NewGORMTournamentRepository creates a new instance of GORMTournamentRepository.
func NewGORMTournamentRepository(db *gorm.DB) *GORMTournamentRepository {
	return &GORMTournamentRepository{
		db: db,
	}
}

// GetAll retrieves all tournaments, paginated when both limit and offset are set.
func (r *GORMTournamentRepository) GetAll(limit, offset int) ([]models.Tournament, error) {
	tournaments := []models.Tournament{}
	query := r.db
	if limit >= 0 && offset >= 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&tournaments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tournaments: %w", translate(err))
	}
	return tournaments, nil
}

// GetByID retrieves a single tournament by its ID.
func (r *GORMTournamentRepository) GetByID(id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := r.db.First(&tournament, id).Error; err != nil {
		return nil, fmt.Errorf("tournament with ID %d: %w", id, translate(err))
	}
	return &tournament, nil
}

// Create inserts a new tournament.
func (r *GORMTournamentRepository) Create(tournament *models.Tournament) error {
	if err := r.db.Create(tournament).Error; err != nil {
		return fmt.Errorf("failed to create tournament: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing tournament.
func (r *GORMTournamentRepository) Update(tournament *models.Tournament) error {
	res := r.db.Save(tournament)
	if res.Error != nil {
		return fmt.Errorf("failed to update tournament: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tournament with ID %d: %w", tournament.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a tournament by its ID.
func (r *GORMTournamentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Tournament{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tournament: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tournament with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
