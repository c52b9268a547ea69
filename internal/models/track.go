package models

// Track is a leveled curriculum of pillars and daily tasks.
// The catalog is immutable after seeding; Level doubles as the
// difficulty tier referenced by User.CurrentTrackLevel.
type Track struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Level       int    `gorm:"uniqueIndex;not null" json:"level"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Objective   string `gorm:"type:text;not null" json:"objective"`

	// Relations
	Pillars []TrackPillar `gorm:"foreignKey:TrackID" json:"pillars,omitempty"`
}
