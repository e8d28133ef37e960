package models

// League represents one league a player can be registered in (e.g. APTA_CHICAGO, NSTF)
type League struct {
	BaseModel
	LeagueID   string `json:"league_id" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"` // stable external code
	LeagueName string `json:"league_name" gorm:"not null;size:100" validate:"required,max=100"`
	LeagueURL  string `json:"league_url" gorm:"size:255"`
}

// TableName returns the table name for League
func (League) TableName() string {
	return "leagues"
}

// Club represents a club within one or more leagues
type Club struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}

// Series represents a series/division within a league
type Series struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Series
func (Series) TableName() string {
	return "series"
}
