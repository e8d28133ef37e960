package repository

import (
	"rally-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueRepository handles database operations for leagues
type LeagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *gorm.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// Create creates a new league
func (r *LeagueRepository) Create(league *models.League) error {
	return r.db.Create(league).Error
}

// GetByID retrieves a league by its database ID
func (r *LeagueRepository) GetByID(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetByLeagueID retrieves a league by its external code (e.g. APTA_CHICAGO)
func (r *LeagueRepository) GetByLeagueID(leagueID string) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "league_id = ?", leagueID).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetAll retrieves all leagues
func (r *LeagueRepository) GetAll() ([]models.League, error) {
	var leagues []models.League
	err := r.db.Order("league_id ASC").Find(&leagues).Error
	if err != nil {
		return nil, err
	}
	return leagues, nil
}
