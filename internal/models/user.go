package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint64         `gorm:"primarykey" json:"id"`
	Username           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash       string         `gorm:"type:varchar(255);not null" json:"-"`
	Name               string         `gorm:"type:varchar(255);not null" json:"name"`
	IsPremium          bool           `gorm:"not null;default:false" json:"is_premium"`
	CurrentTrackLevel  int            `gorm:"not null;default:1" json:"current_track_level"`
	LastAssessmentDate *time.Time     `json:"last_assessment_date"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Progress    []ProgressRecord   `gorm:"foreignKey:UserID" json:"-"`
	Assessments []AssessmentAnswer `gorm:"foreignKey:UserID" json:"-"`
}
