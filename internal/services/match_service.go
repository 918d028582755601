package services

import (
	"errors"
	"log"

	"footballapi/internal/models"
	"footballapi/internal/repositories"
)

// EventPublisher publishes match lifecycle events to the message broker.
type EventPublisher interface {
	PublishMatchEvent(event map[string]interface{}) error
}

// MatchService handles business logic related to matches.
type MatchService struct {
	repo           repositories.MatchRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
	publisher      EventPublisher
}

// NewMatchService creates a new MatchService. The publisher may be nil, in
// which case no events are emitted.
func NewMatchService(
	repo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	publisher EventPublisher,
) *MatchService {
	return &MatchService{
		repo:           repo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		publisher:      publisher,
	}
}

// checkReferences verifies the tournament and both team roles exist before a
// write. A dangling foreign key is a validation fault, not an internal error.
func (s *MatchService) checkReferences(match *models.Match) error {
	fields := models.ValidationErrors{}
	if _, err := s.tournamentRepo.GetByID(match.TournamentID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_tournament"] = "referenced tournament does not exist"
	}
	if _, err := s.teamRepo.GetByID(match.HomeTeamID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_home"] = "referenced home team does not exist"
	}
	if _, err := s.teamRepo.GetByID(match.AwayTeamID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		fields["fk_away"] = "referenced away team does not exist"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// publish emits a match event, best effort. A broker failure is logged and
// never fails the request.
func (s *MatchService) publish(event string, match *models.Match) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"event":         event,
		"id_match":      match.ID,
		"fk_tournament": match.TournamentID,
		"fk_home":       match.HomeTeamID,
		"fk_away":       match.AwayTeamID,
	}
	if match.Winner != nil {
		payload["winner"] = *match.Winner
	}
	if err := s.publisher.PublishMatchEvent(payload); err != nil {
		log.Printf("Failed to publish %s event for match %d: %v", event, match.ID, err)
	}
}

// GetAllMatches retrieves all matches with their associations, paginated
// when both limit and offset are non-negative.
func (s *MatchService) GetAllMatches(limit, offset int) ([]models.Match, error) {
	return s.repo.GetAll(limit, offset)
}

// GetMatchByID retrieves a single match by its ID.
func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	return s.repo.GetByID(id)
}

// CreateMatch creates a new match after checking its references.
func (s *MatchService) CreateMatch(match *models.Match) error {
	if err := s.checkReferences(match); err != nil {
		return err
	}
	if err := s.repo.Create(match); err != nil {
		return err
	}
	s.publish("match.created", match)
	return nil
}

// UpdateMatch patches the provided fields of an existing match, re-checking
// references when any foreign key changed.
func (s *MatchService) UpdateMatch(id uint, update *models.MatchUpdate) (*models.Match, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Winner != nil {
		match.Winner = update.Winner
	}
	if update.HomeGoals != nil {
		match.HomeGoals = update.HomeGoals
	}
	if update.AwayGoals != nil {
		match.AwayGoals = update.AwayGoals
	}
	if update.MatchDate != nil {
		match.MatchDate = *update.MatchDate
	}
	refsChanged := update.TournamentID != nil || update.HomeTeamID != nil || update.AwayTeamID != nil
	if update.TournamentID != nil {
		match.TournamentID = *update.TournamentID
	}
	if update.HomeTeamID != nil {
		match.HomeTeamID = *update.HomeTeamID
	}
	if update.AwayTeamID != nil {
		match.AwayTeamID = *update.AwayTeamID
	}
	if refsChanged {
		if err := s.checkReferences(match); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(match); err != nil {
		return nil, err
	}
	s.publish("match.updated", match)
	return s.repo.GetByID(id)
}

// DeleteMatch deletes a match by its ID.
func (s *MatchService) DeleteMatch(id uint) error {
	return s.repo.Delete(id)
}

// GetMatchesByTournament retrieves all matches played in a tournament.
func (s *MatchService) GetMatchesByTournament(tournamentID uint) ([]models.Match, error) {
	return s.repo.GetByTournament(tournamentID)
}

// GetMatchesByTeam retrieves all matches a team played in, home or away.
func (s *MatchService) GetMatchesByTeam(teamID uint) ([]models.Match, error) {
	return s.repo.GetByTeam(teamID)
}
