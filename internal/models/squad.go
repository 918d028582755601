package models

// Squad is a tournament roster entry: this player wore this number in this
// position for this team during this tournament.
type Squad struct {
	ID           uint   `json:"id_squad" gorm:"primaryKey;autoIncrement"`
	Position     string `json:"position" gorm:"type:varchar(20);not null" validate:"required,oneof=goalkeeper defender midfielder striker"`
	Number       int    `json:"number" gorm:"not null" validate:"required,min=1,max=99"`
	TeamID       uint   `json:"fk_team" gorm:"column:fk_team;not null" validate:"required"`
	PlayerID     uint   `json:"fk_player" gorm:"column:fk_player;not null" validate:"required"`
	TournamentID uint   `json:"fk_tournament" gorm:"column:fk_tournament;not null" validate:"required"`

	Team       *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
	Player     *Player     `json:"player,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
	Tournament *Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID;references:ID"`
}

// SquadUpdate is the partial-patch body for PATCH /squads/:id. Nil fields are
// left unchanged.
type SquadUpdate struct {
	Position     *string `json:"position" validate:"omitempty,oneof=goalkeeper defender midfielder striker"`
	Number       *int    `json:"number" validate:"omitempty,min=1,max=99"`
	TeamID       *uint   `json:"fk_team"`
	PlayerID     *uint   `json:"fk_player"`
	TournamentID *uint   `json:"fk_tournament"`
}
