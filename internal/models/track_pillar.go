package models

// TrackPillar is a life-category grouping of tasks within a track
// (Exercise, Finance, Sleep, ...).
type TrackPillar struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	TrackID     uint64 `gorm:"not null;index" json:"track_id"`
	Category    string `gorm:"type:varchar(255);not null" json:"category"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Relations
	Tasks []DailyTask `gorm:"foreignKey:TrackPillarID" json:"tasks,omitempty"`
}
