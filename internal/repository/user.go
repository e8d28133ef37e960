package repository

import (
	"errors"
	"strings"

	"rally-backend/internal/database/models"
	apperrors "rally-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key value") {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "LOWER(email) = ?", normalize(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateLeagueContext sets the user's default league context
func (r *UserRepository) UpdateLeagueContext(userID, leagueID uuid.UUID) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("league_context_id", leagueID).Error
}

// FindDiscoveryTargets selects up to limit users most likely to benefit from
// association discovery: fewest existing associations first, then most recently
// created accounts first.
func (r *UserRepository) FindDiscoveryTargets(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Select("users.*").
		Joins("LEFT JOIN user_player_associations upa ON upa.user_id = users.id").
		Group("users.id").
		Order("COUNT(upa.id) ASC, users.created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
