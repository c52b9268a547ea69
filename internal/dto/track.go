package dto

import (
	"github.com/yukikurage/life-track-api/internal/models"
)

// TrackDTO represents a track in list responses (no hierarchy)
type TrackDTO struct {
	ID          uint64 `json:"id"`
	Level       int    `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Objective   string `json:"objective"`
}

// DailyTaskDTO represents a prescribed task in API responses
type DailyTaskDTO struct {
	ID               uint64 `json:"id"`
	TrackPillarID    uint64 `json:"track_pillar_id"`
	Title            string `json:"title"`
	FrequencyPerWeek int    `json:"frequency_per_week"`
	IsHabit          bool   `json:"is_habit"`
}

// TrackPillarDTO represents a pillar with its tasks
type TrackPillarDTO struct {
	ID          uint64         `json:"id"`
	TrackID     uint64         `json:"track_id"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Tasks       []DailyTaskDTO `json:"tasks"`
}

// TrackDetailDTO represents a track with its full pillar/task hierarchy
type TrackDetailDTO struct {
	TrackDTO
	Pillars []TrackPillarDTO `json:"pillars"`
}

// ToTrackDTO converts a Track model to TrackDTO
func ToTrackDTO(track models.Track) TrackDTO {
	return TrackDTO{
		ID:          track.ID,
		Level:       track.Level,
		Title:       track.Title,
		Description: track.Description,
		Objective:   track.Objective,
	}
}

// ToTrackDetailDTO converts a Track model with preloaded hierarchy
func ToTrackDetailDTO(track models.Track) TrackDetailDTO {
	dto := TrackDetailDTO{
		TrackDTO: ToTrackDTO(track),
		Pillars:  make([]TrackPillarDTO, len(track.Pillars)),
	}

	for i, pillar := range track.Pillars {
		pillarDTO := TrackPillarDTO{
			ID:          pillar.ID,
			TrackID:     pillar.TrackID,
			Category:    pillar.Category,
			Description: pillar.Description,
			Tasks:       make([]DailyTaskDTO, len(pillar.Tasks)),
		}
		for j, task := range pillar.Tasks {
			pillarDTO.Tasks[j] = DailyTaskDTO{
				ID:               task.ID,
				TrackPillarID:    task.TrackPillarID,
				Title:            task.Title,
				FrequencyPerWeek: task.FrequencyPerWeek,
				IsHabit:          task.IsHabit,
			}
		}
		dto.Pillars[i] = pillarDTO
	}

	return dto
}
