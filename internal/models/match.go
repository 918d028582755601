package models

import "time"

// Match outcomes, relative to the home side.
const (
	MatchWinnerHome = "home"
	MatchWinnerAway = "away"
	MatchWinnerDraw = "draw"
)

// Match represents a fixture between two teams in a tournament. The two Team
// references are disambiguated by role (home/away); winner and goals stay
// null until the match has been played.
type Match struct {
	ID           uint      `json:"id_match" gorm:"primaryKey;autoIncrement"`
	Winner       *string   `json:"winner" gorm:"type:varchar(10)" validate:"omitempty,oneof=home away draw"`
	HomeGoals    *int      `json:"homeGoals" validate:"omitempty,min=0"`
	AwayGoals    *int      `json:"awayGoals" validate:"omitempty,min=0"`
	MatchDate    time.Time `json:"matchDate" gorm:"not null" validate:"required"`
	TournamentID uint      `json:"fk_tournament" gorm:"column:fk_tournament;not null" validate:"required"`
	HomeTeamID   uint      `json:"fk_home" gorm:"column:fk_home;not null" validate:"required"`
	AwayTeamID   uint      `json:"fk_away" gorm:"column:fk_away;not null" validate:"required"`

	Tournament *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID;references:ID"`
	HomeTeam   *Team       `json:"homeTeam,omitempty" gorm:"foreignKey:HomeTeamID;references:ID"`
	AwayTeam   *Team       `json:"awayTeam,omitempty" gorm:"foreignKey:AwayTeamID;references:ID"`
}

// MatchUpdate is the partial-patch body for PATCH /matches/:id. Nil fields
// are left unchanged; recording a result is a patch of winner and goals.
type MatchUpdate struct {
	Winner       *string    `json:"winner" validate:"omitempty,oneof=home away draw"`
	HomeGoals    *int       `json:"homeGoals" validate:"omitempty,min=0"`
	AwayGoals    *int       `json:"awayGoals" validate:"omitempty,min=0"`
	MatchDate    *time.Time `json:"matchDate"`
	TournamentID *uint      `json:"fk_tournament"`
	HomeTeamID   *uint      `json:"fk_home"`
	AwayTeamID   *uint      `json:"fk_away"`
}
