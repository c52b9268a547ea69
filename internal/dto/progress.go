package dto

import (
	"github.com/yukikurage/life-track-api/internal/models"
	"github.com/yukikurage/life-track-api/internal/services"
)

// ProgressRecordDTO represents one completion record in API responses
type ProgressRecordDTO struct {
	ID          uint64 `json:"id"`
	UserID      uint64 `json:"user_id"`
	TaskID      uint64 `json:"task_id"`
	CompletedAt string `json:"completed_at"`
	Status      string `json:"status"`
}

// DailyCompletionDTO represents the derived daily completion summary
type DailyCompletionDTO struct {
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percentage     float64 `json:"percentage"`
	DaysRemaining  int     `json:"days_remaining"`
}

// ToProgressRecordDTO converts a ProgressRecord model
func ToProgressRecordDTO(record models.ProgressRecord) ProgressRecordDTO {
	return ProgressRecordDTO{
		ID:          record.ID,
		UserID:      record.UserID,
		TaskID:      record.TaskID,
		CompletedAt: record.CompletedAt,
		Status:      string(record.Status),
	}
}

// ToProgressRecordDTOs converts a slice of ProgressRecord models
func ToProgressRecordDTOs(records []models.ProgressRecord) []ProgressRecordDTO {
	dtos := make([]ProgressRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = ToProgressRecordDTO(record)
	}
	return dtos
}

// ToDailyCompletionDTO converts the service read-model
func ToDailyCompletionDTO(completion services.DailyCompletion) DailyCompletionDTO {
	return DailyCompletionDTO{
		CompletedCount: completion.CompletedCount,
		TotalCount:     completion.TotalCount,
		Percentage:     completion.Percentage,
		DaysRemaining:  completion.DaysRemaining,
	}
}
