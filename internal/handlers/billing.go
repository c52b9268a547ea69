package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/life-track-api/internal/errors"
	"github.com/yukikurage/life-track-api/internal/middleware"
	"github.com/yukikurage/life-track-api/internal/services"
)

// BillingHandler handles the premium upgrade stub. Real payment
// processing lives outside this service.
type BillingHandler struct {
	authService *services.AuthService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(authService *services.AuthService) *BillingHandler {
	return &BillingHandler{
		authService: authService,
	}
}

// Upgrade flips the premium flag for the authenticated user.
func (h *BillingHandler) Upgrade(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if _, err := h.authService.Upgrade(userID); err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
