package models

import "time"

// Player represents a football player.
type Player struct {
	ID            uint      `json:"id_player" gorm:"primaryKey;autoIncrement"`
	PlayerName    string    `json:"playerName" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	PlayerSurname string    `json:"playerSurname" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	BirthDate     time.Time `json:"birthDate" gorm:"not null" validate:"required"`
	Position      string    `json:"position" gorm:"type:varchar(20);not null" validate:"required,oneof=goalkeeper defender midfielder striker"`
}
