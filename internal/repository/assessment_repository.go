package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateAnswer is returned when appending the audit record fails inside the submit transaction.
	ErrCreateAnswer = errors.New("assessment repository: create answer failed")
	// ErrAssignLevel is returned when applying the level assignment fails inside the submit transaction.
	ErrAssignLevel = errors.New("assessment repository: assign level failed")
)

// GormAssessmentRepository is a GORM implementation of AssessmentRepository
type GormAssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &GormAssessmentRepository{db: db}
}

// SubmitWithAssignment appends the answer audit record and applies the level
// assignment to the user atomically. The audit row is never updated
// afterwards; only the user row reflects the latest evaluation.
func (r *GormAssessmentRepository) SubmitWithAssignment(answer *models.AssessmentAnswer, level int, assessedAt time.Time) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAnswer, err)
		}

		updates := map[string]interface{}{
			"current_track_level":  level,
			"last_assessment_date": assessedAt,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", answer.UserID).Updates(updates).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAssignLevel, err)
		}

		return tx.First(&user, answer.UserID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByUserID returns a user's assessment history, newest first
func (r *GormAssessmentRepository) ListByUserID(userID uint64) ([]models.AssessmentAnswer, error) {
	var answers []models.AssessmentAnswer
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
