package models

import "time"

type ProgressStatus string

const (
	ProgressStatusCompleted ProgressStatus = "completed"
)

// ProgressRecord is evidence that a user completed a task on a calendar
// date. Absence of a row is the incomplete state; the composite unique
// index keeps at most one row per (user, task, date) tuple.
type ProgressRecord struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_progress_user_task_date" json:"user_id"`
	TaskID uint64 `gorm:"not null;uniqueIndex:idx_progress_user_task_date" json:"task_id"`
	// CompletedAt is a calendar day in YYYY-MM-DD form with no time or
	// timezone component. The client supplies its local "today".
	CompletedAt string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_progress_user_task_date" json:"completed_at"`
	Status      ProgressStatus `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`

	// Relations
	User User      `gorm:"foreignKey:UserID" json:"-"`
	Task DailyTask `gorm:"foreignKey:TaskID" json:"-"`
}
