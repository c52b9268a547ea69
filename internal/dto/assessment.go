package dto

import (
	"encoding/json"
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
)

// AssessmentAnswerDTO represents one audit record in API responses
type AssessmentAnswerDTO struct {
	ID        uint64          `json:"id"`
	UserID    uint64          `json:"user_id"`
	Answers   json.RawMessage `json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToAssessmentAnswerDTOs converts a slice of AssessmentAnswer models
func ToAssessmentAnswerDTOs(answers []models.AssessmentAnswer) []AssessmentAnswerDTO {
	dtos := make([]AssessmentAnswerDTO, len(answers))
	for i, answer := range answers {
		dtos[i] = AssessmentAnswerDTO{
			ID:        answer.ID,
			UserID:    answer.UserID,
			Answers:   json.RawMessage(answer.Answers),
			CreatedAt: answer.CreatedAt,
		}
	}
	return dtos
}
