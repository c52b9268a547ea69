package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/life-track-api/internal/constants"
	"github.com/yukikurage/life-track-api/internal/models"
	"github.com/yukikurage/life-track-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTrackNotFound   = errors.New("track not found")
	ErrLevelOutOfRange = errors.New("track level out of range")
)

// TrackService handles catalog reads and track assignment.
type TrackService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
}

// NewTrackService creates a new TrackService
func NewTrackService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository) *TrackService {
	return &TrackService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
	}
}

// ListTracks returns the full catalog ordered by level
func (s *TrackService) ListTracks() ([]models.Track, error) {
	tracks, err := s.catalogRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

// GetCurrentTrack returns the user's current track with its full
// pillar/task hierarchy
func (s *TrackService) GetCurrentTrack(userID uint64) (*models.Track, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	track, err := s.catalogRepo.FindByLevelWithHierarchy(user.CurrentTrackLevel)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to find track: %w", err)
	}

	return track, nil
}

// AssignLevel moves a user to the given track level and stamps the last
// assessment date. The level must be in range and have seeded catalog data.
func (s *TrackService) AssignLevel(userID uint64, level int) (*models.User, error) {
	if err := s.ValidateLevel(level); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateTrackLevel(userID, level, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to assign level: %w", err)
	}

	return user, nil
}

// ValidateLevel checks the numeric range and catalog existence of a level
func (s *TrackService) ValidateLevel(level int) error {
	if level < constants.MinTrackLevel || level > constants.MaxTrackLevel {
		return ErrLevelOutOfRange
	}

	if _, err := s.catalogRepo.FindByLevel(level); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrackNotFound
		}
		return fmt.Errorf("failed to verify track: %w", err)
	}

	return nil
}
