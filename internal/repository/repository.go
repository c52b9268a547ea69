package repository

import (
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// UpdateTrackLevel sets the user's current track level and stamps the
	// last assessment date as a single update
	UpdateTrackLevel(id uint64, level int, assessedAt time.Time) (*models.User, error)

	// SetPremium flips the premium flag
	SetPremium(id uint64, premium bool) (*models.User, error)
}

// CatalogRepository defines the interface for the seeded track catalog
type CatalogRepository interface {
	// FindByLevel finds a track by its level
	FindByLevel(level int) (*models.Track, error)

	// FindByLevelWithHierarchy finds a track with its pillars and their tasks
	FindByLevelWithHierarchy(level int) (*models.Track, error)

	// List returns all tracks ordered by level ascending
	List() ([]models.Track, error)

	// IsEmpty reports whether the catalog has been seeded
	IsEmpty() (bool, error)
}

// ProgressRepository defines the interface for the per-day completion ledger
type ProgressRepository interface {
	// FindForUserOnDate returns all records for a user on a calendar date
	FindForUserOnDate(userID uint64, date string) ([]models.ProgressRecord, error)

	// Toggle flips the completion record for (userID, taskID, date) and
	// reports the resulting state: true if the record now exists
	Toggle(userID, taskID uint64, date string) (bool, error)
}

// AssessmentRepository defines the interface for assessment submissions
type AssessmentRepository interface {
	// SubmitWithAssignment appends the answer audit record and applies the
	// level assignment to the user within a single transaction
	SubmitWithAssignment(answer *models.AssessmentAnswer, level int, assessedAt time.Time) (*models.User, error)

	// ListByUserID returns a user's assessment history, newest first
	ListByUserID(userID uint64) ([]models.AssessmentAnswer, error)
}
