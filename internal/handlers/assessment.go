package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/life-track-api/internal/dto"
	apierrors "github.com/yukikurage/life-track-api/internal/errors"
	"github.com/yukikurage/life-track-api/internal/middleware"
	"github.com/yukikurage/life-track-api/internal/services"
)

// AssessmentHandler accepts questionnaire submissions.
type AssessmentHandler struct {
	assessmentService *services.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

// Submit stores the raw answers and moves the user to the evaluated track
// level. The client's recommendedLevel is advisory; the server recomputes
// from the answers.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitRequest struct {
		Answers          map[string]any `json:"answers" binding:"required"`
		RecommendedLevel int            `json:"recommendedLevel" binding:"required,min=1,max=4"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.assessmentService.Submit(services.SubmitInput{
		UserID:      userID,
		Answers:     req.Answers,
		ClientLevel: req.RecommendedLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLevelOutOfRange):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTrackNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to submit assessment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"newLevel": user.CurrentTrackLevel,
	})
}

// History returns the user's past submissions, newest first.
func (h *AssessmentHandler) History(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	answers, err := h.assessmentService.History(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list assessments")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssessmentAnswerDTOs(answers))
}
