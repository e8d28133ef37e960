package models

import "github.com/google/uuid"

// Player is one player directory entry: a person registered within a single
// league/club/series combination. The same real person typically appears as
// several Player rows across leagues, each with its own TenniscoresPlayerID.
// Rows are written by the ETL import; this service only reads them.
type Player struct {
	BaseModel
	TenniscoresPlayerID string    `json:"tenniscores_player_id" gorm:"uniqueIndex:idx_players_league_player;not null;size:255" validate:"required,max=255"`
	LeagueID            uuid.UUID `json:"league_id" gorm:"type:uuid;uniqueIndex:idx_players_league_player;not null;index"`
	ClubID              uuid.UUID `json:"club_id" gorm:"type:uuid;not null;index"`
	SeriesID            uuid.UUID `json:"series_id" gorm:"type:uuid;not null;index"`
	FirstName           string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName            string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email               string    `json:"email" gorm:"size:255"` // optional, often absent or stale in scraped data
	IsActive            bool      `json:"is_active" gorm:"not null;default:true"`

	League League `json:"league" gorm:"foreignKey:LeagueID"`
	Club   Club   `json:"club" gorm:"foreignKey:ClubID"`
	Series Series `json:"series" gorm:"foreignKey:SeriesID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
