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

// ProgressHandler serves the daily completion ledger and its read-model.
type ProgressHandler struct {
	progressService *services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// GetToday returns the user's completion records for the current day.
func (h *ProgressHandler) GetToday(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	records, err := h.progressService.TodayProgress(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch today's progress")
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressRecordDTOs(records))
}

// Toggle flips the completion record for a task on a calendar date and
// returns the resulting state. Calling it twice restores the original
// state; the date comes from the client, not the server clock.
func (h *ProgressHandler) Toggle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ToggleRequest struct {
		TaskID uint64 `json:"taskId" binding:"required"`
		Date   string `json:"date" binding:"required"`
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing taskId or date")
		return
	}

	completed, err := h.progressService.Toggle(services.ToggleInput{
		UserID: userID,
		TaskID: req.TaskID,
		Date:   req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrTaskIDMissing):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to toggle task")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"completed": completed,
	})
}

// GetSummary returns the derived daily completion figures for the
// dashboard.
func (h *ProgressHandler) GetSummary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	completion, err := h.progressService.ComputeDailyCompletion(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTrackNotFound), errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to compute daily completion")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyCompletionDTO(*completion))
}
