package games

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"api/database"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Constants for cache keys and timeouts
const (
	DatabaseTimeout    = 5 * time.Second
	GamesCacheKey      = "games:all"
	GamesCacheDuration = 5 * time.Minute
)

// parseFilter builds the catalog filter from query parameters. A single
// `players` value feeds both player criteria (the one-slider semantics);
// explicit min_players/max_players override it individually.
func parseFilter(c *gin.Context) services.GameFilter {
	filter := services.GameFilter{
		Search:       c.Query("search"),
		Difficulty:   c.Query("difficulty"),
		DrinkingOnly: c.Query("drinking") == "true",
	}

	if v, err := strconv.Atoi(c.Query("players")); err == nil {
		players := v
		filter.MinPlayers = &players
		filter.MaxPlayers = &players
	}
	if v, err := strconv.Atoi(c.Query("min_players")); err == nil {
		minPlayers := v
		filter.MinPlayers = &minPlayers
	}
	if v, err := strconv.Atoi(c.Query("max_players")); err == nil {
		maxPlayers := v
		filter.MaxPlayers = &maxPlayers
	}
	return filter
}

// loadAllGames returns the full catalog, preferring the Redis cache
func loadAllGames(ctx context.Context) ([]models.Game, error) {
	cached, err := database.REDIS.Get(ctx, GamesCacheKey).Result()
	if err == nil && cached != "" {
		var games []models.Game
		if err := utils.UnmarshalJSON([]byte(cached), &games); err == nil {
			metrics.CacheHits.Inc()
			return games, nil
		}
	}
	metrics.CacheMisses.Inc()

	var games []models.Game
	start := time.Now()
	if err := database.DB.WithContext(ctx).Order("name").Find(&games).Error; err != nil {
		return nil, err
	}
	metrics.RecordDBOperation("select", "games", start)

	if gamesJSON, err := utils.MarshalJSON(games); err == nil {
		if err := database.REDIS.Set(ctx, GamesCacheKey, string(gamesJSON), GamesCacheDuration).Err(); err != nil {
			// Just log the error, don't fail the request
			log.Warnf("failed to cache games: %v", err)
		}
	}
	return games, nil
}

// invalidateGamesCache drops the cached catalog after any mutation
func invalidateGamesCache(ctx context.Context) {
	if err := database.REDIS.Del(ctx, GamesCacheKey).Err(); err != nil {
		log.Warnf("failed to invalidate games cache: %v", err)
	}
}

// GetGames returns the catalog filtered by the query criteria
// @Summary List games
// @Description Get all games, optionally filtered by search term, difficulty, player count and drinking flag. Falls back to a static demo catalog when the store is unreachable.
// @Tags Games
// @Produce json
// @Param search query string false "Case-insensitive search over name, type, explanation and materials"
// @Param difficulty query string false "Easy, Medium or Hard; All disables"
// @Param players query int false "Player count the game's range must include"
// @Param drinking query bool false "Only games with drinking content"
// @Success 200 {array} models.Game
// @Failure 500 {object} map[string]string
// @Router /games [get]
func GetGames(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
	defer cancel()

	games, err := loadAllGames(ctx)
	if err != nil {
		// Browsing survives a store outage on the demo catalog
		log.Warnf("store unavailable, serving demo catalog: %v", err)
		c.Header("X-Data-Source", "demo")
		games = demoGames
	}

	c.JSON(http.StatusOK, services.FilterGames(games, parseFilter(c)))
}

// GetGame returns a single game by ID
// @Summary Get game
// @Description Get one game by its ID
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [get]
func GetGame(c *gin.Context) {
	var game models.Game
	if err := database.DB.Where("id = ?", c.Param("id")).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrGameNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFetchGamesFailed)
		}
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame adds a new game to the catalog
// @Summary Create game
// @Description Create a new game; the name must not collide with an existing one
// @Tags Games
// @Accept json
// @Produce json
// @Param request body GameRequest true "Game fields"
// @Success 201 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [post]
// @Security Bearer
func CreateGame(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.MaxPlayers < req.MinPlayers {
		response.Error(c, http.StatusBadRequest, ErrInvalidPlayerBounds)
		return
	}

	// Uniqueness is a pre-insert existence check, not a schema constraint
	var count int64
	if err := database.DB.Model(&models.Game{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateGameFailed)
		return
	}
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrDuplicateGameName)
		return
	}

	now := time.Now().UTC()
	game := models.Game{
		Name:             req.Name,
		Type:             req.Type,
		Difficulty:       req.Difficulty,
		MinPlayers:       req.MinPlayers,
		MaxPlayers:       req.MaxPlayers,
		MinAge:           req.MinAge,
		MinDuration:      req.MinDuration,
		Materials:        splitList(req.Materials),
		Explanation:      req.Explanation,
		Rules:            req.Rules,
		ScoreCalculation: req.ScoreCalc,
		Example:          req.Example,
		Expansions:       splitList(req.Expansions),
		DrinkingRules:    req.DrinkingRules,
		NeedsUpdate:      req.NeedsUpdate,
		CreatedBy:        user.Username,
		CreatedAt:        &now,
	}

	if err := database.DB.Create(&game).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateGameFailed)
		return
	}

	invalidateGamesCache(c.Request.Context())
	broadcastGameChange("created", game.Name)

	c.JSON(http.StatusCreated, game)
}

// UpdateGame overwrites all fields of a game and records the diff
// @Summary Update game
// @Description Full overwrite of a game; the changed fields are written to the revision log. Audit fields are backfilled when absent.
// @Tags Games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body GameRequest true "Game fields"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [put]
// @Security Bearer
func UpdateGame(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.MaxPlayers < req.MinPlayers {
		response.Error(c, http.StatusBadRequest, ErrInvalidPlayerBounds)
		return
	}

	var game models.Game
	if err := database.DB.Where("id = ?", c.Param("id")).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrGameNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
		}
		return
	}

	// Renaming onto an existing game is a conflict
	if req.Name != game.Name {
		var count int64
		if err := database.DB.Model(&models.Game{}).Where("name = ? AND id <> ?", req.Name, game.ID).Count(&count).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
			return
		}
		if count > 0 {
			response.Error(c, http.StatusConflict, ErrDuplicateGameName)
			return
		}
	}

	now := time.Now().UTC()
	updated := game
	updated.Name = req.Name
	updated.Type = req.Type
	updated.Difficulty = req.Difficulty
	updated.MinPlayers = req.MinPlayers
	updated.MaxPlayers = req.MaxPlayers
	updated.MinAge = req.MinAge
	updated.MinDuration = req.MinDuration
	updated.Materials = splitList(req.Materials)
	updated.Explanation = req.Explanation
	updated.Rules = req.Rules
	updated.ScoreCalculation = req.ScoreCalc
	updated.Example = req.Example
	updated.Expansions = splitList(req.Expansions)
	updated.DrinkingRules = req.DrinkingRules
	updated.NeedsUpdate = req.NeedsUpdate

	// Backfill audit fields the record predates
	if updated.CreatedBy == "" {
		updated.CreatedBy = user.Username
	}
	if updated.CreatedAt == nil {
		updated.CreatedAt = &now
	}

	changes := diffGames(game, updated)

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(&updated).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
		return
	}

	if len(changes) > 0 {
		changesJSON, err := utils.MarshalJSON(changes)
		if err != nil {
			tx.Rollback()
			response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
			return
		}
		revision := models.GameRevision{
			GameID:   updated.ID,
			GameName: updated.Name,
			EditedBy: user.Username,
			EditedAt: now,
			Changes:  changesJSON,
		}
		if err := tx.Create(&revision).Error; err != nil {
			tx.Rollback()
			response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdateGameFailed)
		return
	}

	invalidateGamesCache(c.Request.Context())
	broadcastGameChange("updated", updated.Name)

	c.JSON(http.StatusOK, updated)
}

// DeleteGame removes a game permanently
// @Summary Delete game
// @Description Physically delete a game; requires the confirm=true query parameter
// @Tags Games
// @Param id path string true "Game ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [delete]
// @Security Bearer
func DeleteGame(c *gin.Context) {
	if c.Query("confirm") != "true" {
		response.Error(c, http.StatusBadRequest, ErrConfirmRequired)
		return
	}

	var game models.Game
	if err := database.DB.Where("id = ?", c.Param("id")).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrGameNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrDeleteGameFailed)
		}
		return
	}

	if err := database.DB.Delete(&game).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeleteGameFailed)
		return
	}

	invalidateGamesCache(c.Request.Context())
	broadcastGameChange("deleted", game.Name)

	c.Status(http.StatusNoContent)
}

// GetGameRevisions lists the audit trail of one game, newest first
// @Summary List game revisions
// @Description Get the edit history of a game
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {array} models.GameRevision
// @Failure 500 {object} map[string]string
// @Router /games/{id}/revisions [get]
// @Security Bearer
func GetGameRevisions(c *gin.Context) {
	var revisions []models.GameRevision
	err := database.DB.Where("game_id = ?", c.Param("id")).
		Order("edited_at DESC").
		Find(&revisions).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchGamesFailed)
		return
	}
	c.JSON(http.StatusOK, revisions)
}

func broadcastGameChange(action, name string) {
	realtime.BroadcastActivity(realtime.ActivityEvent{
		Type:      realtime.EventGameChange,
		Timestamp: time.Now().UTC(),
		Payload:   gin.H{"action": action, "name": name},
	})
}
