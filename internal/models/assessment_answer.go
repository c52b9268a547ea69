package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentAnswer is an append-only audit record of one assessment
// submission. Answers stores the raw payload verbatim; its shape is
// governed by the evaluator's question catalog, not the schema.
type AssessmentAnswer struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	Answers   datatypes.JSON `gorm:"not null" json:"answers"`
	CreatedAt time.Time      `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
