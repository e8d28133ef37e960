package models

import "github.com/google/uuid"

// UserPlayerAssociation links a user account to one player directory identifier.
// The composite unique index is what makes association creation idempotent under
// concurrent discovery runs: a second insert for the same pair fails at the
// storage layer and is treated as a no-op by callers.
type UserPlayerAssociation struct {
	BaseModel
	UserID              uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_user_player;not null"`
	TenniscoresPlayerID string    `json:"tenniscores_player_id" gorm:"uniqueIndex:idx_user_player;not null;size:255" validate:"required,max=255"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for UserPlayerAssociation
func (UserPlayerAssociation) TableName() string {
	return "user_player_associations"
}
