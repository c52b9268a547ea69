package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
	"github.com/yukikurage/life-track-api/internal/repository"
	"github.com/yukikurage/life-track-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrTaskIDMissing = errors.New("task id is required")
)

// ProgressService handles the daily completion ledger and the derived
// completion read-model.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	catalogRepo  repository.CatalogRepository
	userRepo     repository.UserRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(progressRepo repository.ProgressRepository, catalogRepo repository.CatalogRepository, userRepo repository.UserRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		catalogRepo:  catalogRepo,
		userRepo:     userRepo,
	}
}

// ToggleInput represents one toggle request.
type ToggleInput struct {
	UserID uint64
	TaskID uint64
	// Date is the client's local calendar day, YYYY-MM-DD. The ledger
	// never substitutes its own "now" here.
	Date string
}

// Toggle flips the completion record and returns the resulting state:
// true means the task is now complete. Two successive toggles restore the
// original state.
func (s *ProgressService) Toggle(input ToggleInput) (bool, error) {
	if input.TaskID == 0 {
		return false, ErrTaskIDMissing
	}
	if _, err := utils.ParseDay(input.Date); err != nil {
		return false, ErrInvalidDate
	}

	completed, err := s.progressRepo.Toggle(input.UserID, input.TaskID, input.Date)
	if err != nil {
		return false, fmt.Errorf("failed to toggle progress: %w", err)
	}

	return completed, nil
}

// TodayProgress returns the user's completion records for the server's
// current calendar day.
func (s *ProgressService) TodayProgress(userID uint64) ([]models.ProgressRecord, error) {
	records, err := s.progressRepo.FindForUserOnDate(userID, utils.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's progress: %w", err)
	}
	return records, nil
}

// DailyCompletion is the derived completion read-model for one day. It is
// recomputed on every request and never persisted.
type DailyCompletion struct {
	CompletedCount int
	TotalCount     int
	Percentage     float64
	DaysRemaining  int
}

// ComputeDailyCompletion resolves the user's current track, flattens its
// task universe and intersects it with today's completion records.
func (s *ProgressService) ComputeDailyCompletion(userID uint64) (*DailyCompletion, error) {
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

	taskIDs := make(map[uint64]struct{})
	for _, pillar := range track.Pillars {
		for _, task := range pillar.Tasks {
			taskIDs[task.ID] = struct{}{}
		}
	}

	records, err := s.progressRepo.FindForUserOnDate(userID, utils.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's progress: %w", err)
	}

	completed := 0
	for _, record := range records {
		if _, ok := taskIDs[record.TaskID]; ok {
			completed++
		}
	}

	total := len(taskIDs)
	percentage := 0.0
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}

	return &DailyCompletion{
		CompletedCount: completed,
		TotalCount:     total,
		Percentage:     percentage,
		DaysRemaining:  utils.DaysRemainingInYear(time.Now()),
	}, nil
}
