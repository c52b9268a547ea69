package repository

import (
	"errors"

	"github.com/yukikurage/life-track-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository is a GORM implementation of ProgressRepository
type GormProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &GormProgressRepository{db: db}
}

// FindForUserOnDate returns all records for a user on a calendar date
func (r *GormProgressRepository) FindForUserOnDate(userID uint64, date string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	if err := r.db.
		Where("user_id = ? AND completed_at = ?", userID, date).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Toggle flips the completion record for (userID, taskID, date). The
// check-then-act runs in a transaction, and the composite unique index
// on (user_id, task_id, completed_at) backstops racing inserts: the
// loser's insert is a no-op, leaving the record count at exactly one.
func (r *GormProgressRepository) Toggle(userID, taskID uint64, date string) (bool, error) {
	var completed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ProgressRecord
		err := tx.
			Where("user_id = ? AND task_id = ? AND completed_at = ?", userID, taskID, date).
			First(&existing).Error
		if err == nil {
			completed = false
			return tx.Delete(&models.ProgressRecord{}, existing.ID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := models.ProgressRecord{
			UserID:      userID,
			TaskID:      taskID,
			CompletedAt: date,
			Status:      models.ProgressStatusCompleted,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "task_id"}, {Name: "completed_at"}},
				DoNothing: true,
			}).
			Create(&record).Error; err != nil {
			return err
		}
		completed = true
		return nil
	})
	return completed, err
}
