package models

import "github.com/google/uuid"

// User represents a registered account. LeagueContextID is the user's default
// league context; it is set once by association discovery when the first
// association is created and is otherwise owned by the user's own settings.
type User struct {
	BaseModel
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash    string     `json:"-" gorm:"not null;size:255"`
	FirstName       string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName        string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	IsAdmin         bool       `json:"is_admin" gorm:"not null;default:false"`
	LeagueContextID *uuid.UUID `json:"league_context_id,omitempty" gorm:"type:uuid;index"`

	LeagueContext *League                 `json:"league_context,omitempty" gorm:"foreignKey:LeagueContextID"`
	Associations  []UserPlayerAssociation `json:"associations,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
