package models

// DailyTask is a prescribed recurring action within a pillar.
// FrequencyPerWeek is informational only; the progress ledger does not
// enforce it.
type DailyTask struct {
	ID               uint64 `gorm:"primarykey" json:"id"`
	TrackPillarID    uint64 `gorm:"not null;index" json:"track_pillar_id"`
	Title            string `gorm:"type:varchar(255);not null" json:"title"`
	FrequencyPerWeek int    `gorm:"not null" json:"frequency_per_week"`
	IsHabit          bool   `gorm:"not null;default:true" json:"is_habit"`
}
