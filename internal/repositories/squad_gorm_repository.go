package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMSquadRepository is a GORM implementation of SquadRepository.
type GORMSquadRepository struct {
	db *gorm.DB
}

// NewGORMSquadRepository creates a new instance of GORMSquadRepository.
func NewGORMSquadRepository(db *gorm.DB) *GORMSquadRepository {
	return &GORMSquadRepository{
		db: db,
	}
}

// withAssociations inner-joins the related team, player and tournament.
func (r *GORMSquadRepository) withAssociations() *gorm.DB {
	return r.db.
		InnerJoins("Team").
		InnerJoins("Player").
		InnerJoins("Tournament")
}

// GetAll retrieves all squads with their associations, paginated when both
// limit and offset are set.
func (r *GORMSquadRepository) GetAll(limit, offset int) ([]models.Squad, error) {
	squads := []models.Squad{}
	query := r.withAssociations()
	if limit >= 0 && offset >= 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&squads).Error; err != nil {
		return nil, fmt.Errorf("failed to get all squads: %w", translate(err))
	}
	return squads, nil
}

// GetByID retrieves a single squad by its ID, with associations.
func (r *GORMSquadRepository) GetByID(id uint) (*models.Squad, error) {
	var squad models.Squad
	if err := r.withAssociations().First(&squad, "squads.id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("squad with ID %d: %w", id, translate(err))
	}
	return &squad, nil
}

// Create inserts a new squad entry.
func (r *GORMSquadRepository) Create(squad *models.Squad) error {
	if err := r.db.Create(squad).Error; err != nil {
		return fmt.Errorf("failed to create squad: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing squad entry.
func (r *GORMSquadRepository) Update(squad *models.Squad) error {
	res := r.db.Omit("Team", "Player", "Tournament").Save(squad)
	if res.Error != nil {
		return fmt.Errorf("failed to update squad: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("squad with ID %d: %w", squad.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a squad entry by its ID.
func (r *GORMSquadRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Squad{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete squad: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("squad with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetByTeam retrieves all squad entries for a team, with associations.
func (r *GORMSquadRepository) GetByTeam(teamID uint) ([]models.Squad, error) {
	squads := []models.Squad{}
	if err := r.withAssociations().Where("squads.fk_team = ?", teamID).Find(&squads).Error; err != nil {
		return nil, fmt.Errorf("failed to get squads for team %d: %w", teamID, translate(err))
	}
	return squads, nil
}

// GetTournamentsByTeam retrieves the distinct tournaments a team has fielded
// a squad in, grouping by tournament id to de-duplicate.
func (r *GORMSquadRepository) GetTournamentsByTeam(teamID uint) ([]models.Tournament, error) {
	tournaments := []models.Tournament{}
	err := r.db.Model(&models.Tournament{}).
		Joins("JOIN squads ON squads.fk_tournament = tournaments.id").
		Where("squads.fk_team = ?", teamID).
		Group("tournaments.id").
		Find(&tournaments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tournaments for team %d: %w", teamID, translate(err))
	}
	return tournaments, nil
}
