package models

// Team represents a football team. TeamAKA is the short code shown in
// scoreboards (three letters at most).
type Team struct {
	ID         uint   `json:"id_team" gorm:"primaryKey;autoIncrement"`
	TeamName   string `json:"teamName" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	TeamAKA    string `json:"teamAKA" gorm:"type:varchar(3);not null" validate:"required,max=3"`
	RegionName string `json:"regionName" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Country    string `json:"country" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Manager    string `json:"manager" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
}

// TeamUpdate is the partial-patch body for PATCH /teams/:id. Nil fields are
// left unchanged.
type TeamUpdate struct {
	TeamName   *string `json:"teamName" validate:"omitempty,max=100"`
	TeamAKA    *string `json:"teamAKA" validate:"omitempty,max=3"`
	RegionName *string `json:"regionName" validate:"omitempty,max=100"`
	Country    *string `json:"country" validate:"omitempty,max=100"`
	Manager    *string `json:"manager" validate:"omitempty,max=100"`
}
