package suggestions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrQuotaReached           = "You have reached the submission limit of 5 for today. Please try again tomorrow."
	ErrSubmitFailed           = "Failed to submit suggestion"
	ErrFetchSuggestionsFailed = "Failed to fetch suggestions"
)

// SuggestionsLimit caps how many rows a listing returns; the limit query
// parameter can narrow it further but never exceed it
const SuggestionsLimit = 100

func clampLimit(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > SuggestionsLimit {
		return SuggestionsLimit
	}
	return v
}

// CreateSuggestionRequest is the payload of the public suggestion form
type CreateSuggestionRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	GameName string `json:"game_name"`
	Idea     string `json:"idea" binding:"required"`
	FollowUp bool   `json:"follow_up"`
}

// CreateSuggestion accepts a game idea, capped at five per session per day
// @Summary Submit suggestion
// @Description Submit a game idea; each session may submit at most five per UTC day
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body CreateSuggestionRequest true "Suggestion"
// @Success 201 {object} models.GameSuggestion
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /suggestions [post]
func CreateSuggestion(c *gin.Context) {
	var req CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Idea) == "" {
		response.Error(c, http.StatusBadRequest, "Please describe your game idea")
		return
	}

	suggestion := models.GameSuggestion{
		SessionID: middleware.GetSessionID(c),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		GameName:  strings.TrimSpace(req.GameName),
		Idea:      strings.TrimSpace(req.Idea),
		FollowUp:  req.FollowUp,
	}

	now := time.Now().UTC()
	activity := services.NewActivityService(services.NewActivityStore(database.DB))
	if err := activity.SubmitSuggestion(&suggestion, now); err != nil {
		if errors.Is(err, services.ErrSuggestionQuotaExceeded) {
			// The quota resets at the next UTC midnight
			midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
			response.TooManyRequests(c, midnight.Sub(now), ErrQuotaReached)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrSubmitFailed)
		}
		return
	}

	realtime.BroadcastActivity(realtime.ActivityEvent{
		Type:      realtime.EventSuggestion,
		Timestamp: suggestion.Timestamp,
		Payload:   suggestion,
	})

	c.JSON(http.StatusCreated, suggestion)
}

// GetSuggestions lists submitted ideas for admin review, newest first
// @Summary List suggestions
// @Description Get submitted game ideas, newest first; at most 100 per request
// @Tags Suggestions
// @Produce json
// @Param limit query int false "Maximum rows to return, capped at 100"
// @Success 200 {array} models.GameSuggestion
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /suggestions [get]
// @Security Bearer
func GetSuggestions(c *gin.Context) {
	var suggestions []models.GameSuggestion
	err := database.DB.Order("timestamp DESC").Limit(clampLimit(c.Query("limit"))).Find(&suggestions).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchSuggestionsFailed)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
