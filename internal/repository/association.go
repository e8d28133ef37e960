package repository

import (
	"rally-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationRepository handles database operations for user-player associations
type AssociationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository creates a new association repository
func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// Create inserts a new association. The composite unique index on
// (user_id, tenniscores_player_id) rejects duplicates at the storage layer;
// callers that want idempotent semantics check Exists first and treat a
// duplicate-key failure as a no-op.
func (r *AssociationRepository) Create(assoc *models.UserPlayerAssociation) error {
	return r.db.Create(assoc).Error
}

// Exists reports whether the user is already linked to the given player identifier
func (r *AssociationRepository) Exists(userID uuid.UUID, playerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserPlayerAssociation{}).
		Where("user_id = ? AND tenniscores_player_id = ?", userID, playerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetPlayerIDsByUser returns the player identifiers already linked to a user
func (r *AssociationRepository) GetPlayerIDsByUser(userID uuid.UUID) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.UserPlayerAssociation{}).
		Where("user_id = ?", userID).
		Pluck("tenniscores_player_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByUser retrieves all associations for a user
func (r *AssociationRepository) GetByUser(userID uuid.UUID) ([]models.UserPlayerAssociation, error) {
	var assocs []models.UserPlayerAssociation
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

// CountByUser returns the number of associations a user has
func (r *AssociationRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserPlayerAssociation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
