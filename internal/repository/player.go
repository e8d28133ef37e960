package repository

import (
	"strings"

	"rally-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database reads against the player directory
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// FindActiveByName retrieves active directory entries whose normalized first and
// last name match the given values. Matching is case-insensitive and ignores
// leading/trailing whitespace on both sides.
func (r *PlayerRepository) FindActiveByName(firstName, lastName string) ([]models.Player, error) {
	var players []models.Player
	err := r.db.
		Preload("League").Preload("Club").Preload("Series").
		Where("LOWER(TRIM(first_name)) = ? AND LOWER(TRIM(last_name)) = ? AND is_active = true",
			normalize(firstName), normalize(lastName)).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// FindActiveByEmail retrieves active directory entries by stored email,
// case-insensitively, regardless of name
func (r *PlayerRepository) FindActiveByEmail(email string) ([]models.Player, error) {
	var players []models.Player
	err := r.db.
		Preload("League").Preload("Club").Preload("Series").
		Where("LOWER(TRIM(email)) = ? AND is_active = true", normalize(email)).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByPlayerID retrieves a single directory entry by its external identifier
// within one league
func (r *PlayerRepository) GetByPlayerID(leagueID uuid.UUID, playerID string) (*models.Player, error) {
	var player models.Player
	err := r.db.
		Preload("League").Preload("Club").Preload("Series").
		First(&player, "league_id = ? AND tenniscores_player_id = ?", leagueID, playerID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// SearchByName performs a case-insensitive substring search across first and
// last names with pagination
func (r *PlayerRepository) SearchByName(query string, limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	q := strings.TrimSpace(query)
	searchQuery := r.db.Model(&models.Player{}).
		Where("first_name ILIKE ? OR last_name ILIKE ?", "%"+q+"%", "%"+q+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.
		Preload("League").Preload("Club").Preload("Series").
		Limit(limit).Offset(offset).
		Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// Create inserts a directory entry. Exposed for the ETL import path and tests.
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// normalize lowercases and trims a matching key the same way the SQL side does
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
