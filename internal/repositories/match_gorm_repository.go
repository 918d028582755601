package repositories

import (
	"fmt"

	"footballapi/internal/models"

	"gorm.io/gorm"
)

// GORMMatchRepository is a GORM implementation of MatchRepository.
type GORMMatchRepository struct {
	db *gorm.DB
}

// NewGORMMatchRepository creates a new instance of GORMMatchRepository.
func NewGORMMatchRepository(db *gorm.DB) *GORMMatchRepository {
	return &GORMMatchRepository{
		db: db,
	}
}

// withAssociations inner-joins the tournament and both team roles.
func (r *GORMMatchRepository) withAssociations() *gorm.DB {
	return r.db.
		InnerJoins("Tournament").
		InnerJoins("HomeTeam").
		InnerJoins("AwayTeam")
}

// GetAll retrieves all matches with their associations, paginated when both
// limit and offset are set.
func (r *GORMMatchRepository) GetAll(limit, offset int) ([]models.Match, error) {
	matches := []models.Match{}
	query := r.withAssociations()
	if limit >= 0 && offset >= 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to get all matches: %w", translate(err))
	}
	return matches, nil
}

// GetByID retrieves a single match by its ID, with associations.
func (r *GORMMatchRepository) GetByID(id uint) (*models.Match, error) {
	var match models.Match
	if err := r.withAssociations().First(&match, "matches.id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("match with ID %d: %w", id, translate(err))
	}
	return &match, nil
}

// Create inserts a new match.
func (r *GORMMatchRepository) Create(match *models.Match) error {
	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create match: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing match.
func (r *GORMMatchRepository) Update(match *models.Match) error {
	res := r.db.Omit("Tournament", "HomeTeam", "AwayTeam").Save(match)
	if res.Error != nil {
		return fmt.Errorf("failed to update match: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("match with ID %d: %w", match.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a match by its ID.
func (r *GORMMatchRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Match{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete match: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("match with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetByTournament retrieves all matches played in a tournament.
func (r *GORMMatchRepository) GetByTournament(tournamentID uint) ([]models.Match, error) {
	matches := []models.Match{}
	if err := r.withAssociations().Where("matches.fk_tournament = ?", tournamentID).Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to get matches for tournament %d: %w", tournamentID, translate(err))
	}
	return matches, nil
}

// GetByTeam retrieves all matches a team played in, in either role.
func (r *GORMMatchRepository) GetByTeam(teamID uint) ([]models.Match, error) {
	matches := []models.Match{}
	err := r.withAssociations().
		Where("matches.fk_home = ? OR matches.fk_away = ?", teamID, teamID).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get matches for team %d: %w", teamID, translate(err))
	}
	return matches, nil
}
