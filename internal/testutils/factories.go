package testutils

import (
	"time"

	"rally-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeagueFactory provides methods to create test League data
type LeagueFactory struct{}

// NewLeagueFactory creates a new LeagueFactory
func NewLeagueFactory() *LeagueFactory {
	return &LeagueFactory{}
}

// Create creates a test League with default values
func (f *LeagueFactory) Create() *models.League {
	id := uuid.New()
	return &models.League{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID:   "LEAGUE_" + id.String()[:8],
		LeagueName: "Test League",
		LeagueURL:  "https://example.com/league",
	}
}

// WithCode sets a custom external league code
func (f *LeagueFactory) WithCode(code string) *models.League {
	league := f.Create()
	league.LeagueID = code
	league.LeagueName = code
	return league
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	id := uuid.New()
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Club " + id.String()[:8],
	}
}

// SeriesFactory provides methods to create test Series data
type SeriesFactory struct{}

// NewSeriesFactory creates a new SeriesFactory
func NewSeriesFactory() *SeriesFactory {
	return &SeriesFactory{}
}

// Create creates a test Series with default values
func (f *SeriesFactory) Create() *models.Series {
	id := uuid.New()
	return &models.Series{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Series " + id.String()[:8],
	}
}

// PlayerFactory provides methods to create test Player directory entries
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values. LeagueID, ClubID and
// SeriesID must point at rows that exist; use the other factories first.
func (f *PlayerFactory) Create(leagueID, clubID, seriesID uuid.UUID) *models.Player {
	id := uuid.New()
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenniscoresPlayerID: "TC-" + id.String()[:8],
		LeagueID:            leagueID,
		ClubID:              clubID,
		SeriesID:            seriesID,
		FirstName:           "Ross",
		LastName:            "Freedman",
		IsActive:            true,
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(leagueID, clubID, seriesID uuid.UUID, first, last string) *models.Player {
	player := f.Create(leagueID, clubID, seriesID)
	player.FirstName = first
	player.LastName = last
	return player
}

// WithEmail sets a custom email for the player
func (f *PlayerFactory) WithEmail(leagueID, clubID, seriesID uuid.UUID, email string) *models.Player {
	player := f.Create(leagueID, clubID, seriesID)
	player.Email = email
	return player
}

// Inactive marks the player as no longer active in the directory
func (f *PlayerFactory) Inactive(leagueID, clubID, seriesID uuid.UUID) *models.Player {
	player := f.Create(leagueID, clubID, seriesID)
	player.IsActive = false
	return player
}

// UserFactory provides methods to create test User accounts
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$14$invalidhashforfactoryuse000000000000000000000000000000",
		FirstName:    "Ross",
		LastName:     "Freedman",
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AssociationFactory provides methods to create test associations
type AssociationFactory struct{}

// NewAssociationFactory creates a new AssociationFactory
func NewAssociationFactory() *AssociationFactory {
	return &AssociationFactory{}
}

// Create creates a test association between a user and a player identifier
func (f *AssociationFactory) Create(userID uuid.UUID, playerID string) *models.UserPlayerAssociation {
	return &models.UserPlayerAssociation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:              userID,
		TenniscoresPlayerID: playerID,
	}
}
