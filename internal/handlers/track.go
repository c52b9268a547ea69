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

// TrackHandler serves the seeded track catalog.
type TrackHandler struct {
	trackService *services.TrackService
}

// NewTrackHandler creates a new TrackHandler.
func NewTrackHandler(trackService *services.TrackService) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
	}
}

// ListTracks returns all tracks ordered by level.
func (h *TrackHandler) ListTracks(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tracks, err := h.trackService.ListTracks()
	if err != nil {
		apierrors.InternalError(c, "Failed to list tracks")
		return
	}

	dtos := make([]dto.TrackDTO, len(tracks))
	for i, track := range tracks {
		dtos[i] = dto.ToTrackDTO(track)
	}

	c.JSON(http.StatusOK, dtos)
}

// GetCurrentTrack returns the user's current track with its pillars and
// tasks.
func (h *TrackHandler) GetCurrentTrack(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	track, err := h.trackService.GetCurrentTrack(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTrackNotFound):
			apierrors.NotFound(c, "Track not found")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to fetch current track")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTrackDetailDTO(*track))
}

// AssignLevel moves the user to a chosen track level. Levels 3 and 4 are
// reachable only through this manual path; assessments never recommend
// them.
func (h *TrackHandler) AssignLevel(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AssignLevelRequest struct {
		Level int `json:"level" binding:"required,min=1,max=4"`
	}

	var req AssignLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.trackService.AssignLevel(userID, req.Level)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLevelOutOfRange):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTrackNotFound), errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to assign track level")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"newLevel": user.CurrentTrackLevel,
	})
}
