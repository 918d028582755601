package models

// User roles accepted by the API.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an API user account.
// Plaintext passwords are never stored: only a per-user salt and the derived
// hash are, and neither is ever serialized in a response.
type User struct {
	ID       uint   `json:"id_usuario" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Surname  string `json:"surname" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,alphanum,min=3,max=100"`
	Salt     string `json:"-" gorm:"type:text"`
	Hash     string `json:"-" gorm:"type:text"`
	Type     string `json:"type" gorm:"type:varchar(10);not null" validate:"required,oneof=admin user"`
}
