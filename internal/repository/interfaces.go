package repository

import (
	"rally-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the read API over the player directory.
// Directory rows are written by the ETL import, never by this service.
type PlayerRepositoryInterface interface {
	FindActiveByName(firstName, lastName string) ([]models.Player, error)
	FindActiveByEmail(email string) ([]models.Player, error)
	GetByPlayerID(leagueID uuid.UUID, playerID string) (*models.Player, error)
	SearchByName(query string, limit, offset int) ([]models.Player, int64, error)
	Create(player *models.Player) error
}

// AssociationRepositoryInterface defines operations on user-player links
type AssociationRepositoryInterface interface {
	Create(assoc *models.UserPlayerAssociation) error
	Exists(userID uuid.UUID, playerID string) (bool, error)
	GetPlayerIDsByUser(userID uuid.UUID) ([]string, error)
	GetByUser(userID uuid.UUID) ([]models.UserPlayerAssociation, error)
	CountByUser(userID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines operations on user accounts
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLeagueContext(userID, leagueID uuid.UUID) error
	FindDiscoveryTargets(limit int) ([]models.User, error)
}

// LeagueRepositoryInterface defines operations on leagues
type LeagueRepositoryInterface interface {
	Create(league *models.League) error
	GetByID(id uuid.UUID) (*models.League, error)
	GetByLeagueID(leagueID string) (*models.League, error)
	GetAll() ([]models.League, error)
}
