package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/yukikurage/life-track-api/internal/models"
	"github.com/yukikurage/life-track-api/internal/repository"
	"gorm.io/datatypes"
)

// Assessment question keys and the answer values that gate level 1.
const (
	QuestionFitness = "fitness"
	QuestionFinance = "finance"

	AnswerSedentary = "Sedentary"
	AnswerDebt      = "Debt"
)

// AssessmentService evaluates questionnaire submissions and applies the
// resulting track assignment.
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepository
	trackService   *TrackService
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(assessmentRepo repository.AssessmentRepository, trackService *TrackService) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		trackService:   trackService,
	}
}

// Evaluate maps a set of answers to a recommended track level. Pure and
// deterministic: the default is level 2; a sedentary fitness answer or a
// debt finance answer drops the recommendation to level 1. Levels 3 and 4
// are never recommended, they are manual-upgrade tiers.
func Evaluate(answers map[string]any) int {
	if answerEquals(answers, QuestionFitness, AnswerSedentary) ||
		answerEquals(answers, QuestionFinance, AnswerDebt) {
		return 1
	}
	return 2
}

func answerEquals(answers map[string]any, question, value string) bool {
	answer, ok := answers[question].(string)
	return ok && answer == value
}

// SubmitInput represents one assessment submission.
type SubmitInput struct {
	UserID uint64
	// Answers is stored verbatim as the audit record.
	Answers map[string]any
	// ClientLevel is the recommendation computed by the client. It is
	// advisory only: the server recomputes from Answers and uses its own
	// result, logging any disagreement.
	ClientLevel int
}

// Submit persists the raw answers, recomputes the recommendation and
// applies the level assignment. Audit write and assignment happen in one
// transaction; the answer history is never rewritten afterwards.
func (s *AssessmentService) Submit(input SubmitInput) (*models.User, error) {
	if err := s.trackService.ValidateLevel(input.ClientLevel); err != nil {
		return nil, err
	}

	level := Evaluate(input.Answers)
	if level != input.ClientLevel {
		log.Printf("assessment: client recommended level %d, server evaluated %d for user %d; using server result",
			input.ClientLevel, level, input.UserID)
	}
	if err := s.trackService.ValidateLevel(level); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(input.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	answer := &models.AssessmentAnswer{
		UserID:  input.UserID,
		Answers: datatypes.JSON(raw),
	}

	user, err := s.assessmentRepo.SubmitWithAssignment(answer, level, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to submit assessment: %w", err)
	}

	return user, nil
}

// History returns a user's past submissions, newest first.
func (s *AssessmentService) History(userID uint64) ([]models.AssessmentAnswer, error) {
	answers, err := s.assessmentRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return answers, nil
}
