package services

import (
	"footballapi/internal/models"
	"footballapi/internal/repositories"
)

// PlayerService handles business logic related to players.
type PlayerService struct {
	repo repositories.PlayerRepository
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo repositories.PlayerRepository) *PlayerService {
	return &PlayerService{
		repo: repo,
	}
}

// GetAllPlayers retrieves all players, paginated when both limit and offset
// are non-negative.
func (s *PlayerService) GetAllPlayers(limit, offset int) ([]models.Player, error) {
	return s.repo.GetAll(limit, offset)
}

// GetPlayerByID retrieves a single player by its ID.
func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	return s.repo.GetByID(id)
}

// CreatePlayer creates a new player.
func (s *PlayerService) CreatePlayer(player *models.Player) error {
	return s.repo.Create(player)
}

// UpdatePlayer replaces all fields of an existing player.
func (s *PlayerService) UpdatePlayer(id uint, input *models.Player) (*models.Player, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	player.PlayerName = input.PlayerName
	player.PlayerSurname = input.PlayerSurname
	player.BirthDate = input.BirthDate
	player.Position = input.Position

	if err := s.repo.Update(player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer deletes a player by its ID.
func (s *PlayerService) DeletePlayer(id uint) error {
	return s.repo.Delete(id)
}
