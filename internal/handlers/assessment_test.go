package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/life-track-api/internal/constants"
	"github.com/yukikurage/life-track-api/internal/dto"
	"github.com/yukikurage/life-track-api/internal/models"
)

func postAssessment(t *testing.T, env catalogTestEnv, userID uint64, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewAssessmentHandler(env.assessmentService)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/assessment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(constants.ContextKeyUserID, userID)

	handler.Submit(c)
	return w
}

func TestAssessmentHandler_Submit_AssignsLevelOne(t *testing.T) {
	env := setupCatalogTestEnv(t)
	user := env.createUser(t, "sedentary@example.com", 2)

	w := postAssessment(t, env, user.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Sedentary", "finance": "Stable"},
		"recommendedLevel": 1,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success  bool `json:"success"`
		NewLevel int  `json:"newLevel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.Equal(t, 1, response.NewLevel)

	// The user row reflects the assignment and the assessment stamp.
	updated, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, updated.CurrentTrackLevel)
	require.NotNil(t, updated.LastAssessmentDate)

	// The raw answers were stored verbatim in the audit log.
	var answers []models.AssessmentAnswer
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&answers).Error)
	require.Len(t, answers, 1)

	var stored map[string]string
	require.NoError(t, json.Unmarshal(answers[0].Answers, &stored))
	require.Equal(t, "Sedentary", stored["fitness"])
}

func TestAssessmentHandler_Submit_ServerOverridesClientLevel(t *testing.T) {
	env := setupCatalogTestEnv(t)
	user := env.createUser(t, "optimist@example.com", 1)

	// Client claims level 2, but the answers evaluate to level 1; the
	// server's own evaluation wins.
	w := postAssessment(t, env, user.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Active", "finance": "Debt"},
		"recommendedLevel": 2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success  bool `json:"success"`
		NewLevel int  `json:"newLevel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.NewLevel)
}

func TestAssessmentHandler_Submit_LevelOutOfRange(t *testing.T) {
	env := setupCatalogTestEnv(t)
	user := env.createUser(t, "outofrange@example.com", 1)

	w := postAssessment(t, env, user.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Active"},
		"recommendedLevel": 7,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing may be persisted on validation failure.
	var count int64
	require.NoError(t, env.db.Model(&models.AssessmentAnswer{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAssessmentHandler_History(t *testing.T) {
	env := setupCatalogTestEnv(t)
	user := env.createUser(t, "historian@example.com", 1)
	other := env.createUser(t, "bystander@example.com", 1)

	w := postAssessment(t, env, user.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Sedentary"},
		"recommendedLevel": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postAssessment(t, env, other.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Active"},
		"recommendedLevel": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	handler := NewAssessmentHandler(env.assessmentService)

	w = httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/assessment/history", nil)
	c.Set(constants.ContextKeyUserID, user.ID)

	handler.History(c)

	require.Equal(t, http.StatusOK, w.Code)

	var history []dto.AssessmentAnswerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	require.Equal(t, user.ID, history[0].UserID)

	var stored map[string]string
	require.NoError(t, json.Unmarshal(history[0].Answers, &stored))
	require.Equal(t, "Sedentary", stored["fitness"])
}

func TestAssessmentHandler_Submit_ThenCurrentTrackFollows(t *testing.T) {
	env := setupCatalogTestEnv(t)
	user := env.createUser(t, "journey@example.com", 2)

	w := postAssessment(t, env, user.ID, map[string]any{
		"answers":          map[string]string{"fitness": "Sedentary"},
		"recommendedLevel": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tracks/current", nil)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.trackHandler.GetCurrentTrack(c)

	require.Equal(t, http.StatusOK, w.Code)

	var track dto.TrackDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &track))
	require.Equal(t, 1, track.Level)
}
