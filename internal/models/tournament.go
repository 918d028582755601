package models

import "time"

// Tournament represents a competition edition. Winner stays null until the
// tournament is decided.
type Tournament struct {
	ID             uint      `json:"id_tournament" gorm:"primaryKey;autoIncrement"`
	TournamentName string    `json:"tournamentName" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Year           int       `json:"year" gorm:"not null" validate:"required"`
	StartDate      time.Time `json:"startDate" gorm:"not null" validate:"required"`
	EndDate        time.Time `json:"endDate" gorm:"not null" validate:"required"`
	Winner         *string   `json:"winner" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	TypeTournament string    `json:"typeTournament" gorm:"type:varchar(10);not null" validate:"required,oneof=league cup"`
}
