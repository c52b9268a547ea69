package repository

import (
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateTrackLevel sets the current track level and last assessment date
func (r *GormUserRepository) UpdateTrackLevel(id uint64, level int, assessedAt time.Time) (*models.User, error) {
	updates := map[string]interface{}{
		"current_track_level":  level,
		"last_assessment_date": assessedAt,
	}
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// SetPremium flips the premium flag
func (r *GormUserRepository) SetPremium(id uint64, premium bool) (*models.User, error) {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_premium", premium).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
