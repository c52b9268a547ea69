package dto

import (
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID                 uint64     `json:"id"`
	Username           string     `json:"username"`
	Name               string     `json:"name"`
	IsPremium          bool       `json:"is_premium"`
	CurrentTrackLevel  int        `json:"current_track_level"`
	LastAssessmentDate *time.Time `json:"last_assessment_date"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:                 user.ID,
		Username:           user.Username,
		Name:               user.Name,
		IsPremium:          user.IsPremium,
		CurrentTrackLevel:  user.CurrentTrackLevel,
		LastAssessmentDate: user.LastAssessmentDate,
	}
}
