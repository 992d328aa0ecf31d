package gametypes

import (
	"errors"
	"net/http"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Constants for error messages
const (
	ErrTypeNotFound      = "Game type not found"
	ErrFetchTypesFailed  = "Failed to fetch game types"
	ErrDuplicateTypeName = "This game type already exists"
	ErrCreateTypeFailed  = "Failed to create game type"
	ErrDeleteTypeFailed  = "Failed to delete game type"
	ErrTypeProtected     = "The 'Other' game type cannot be deleted"
)

// CreateGameTypeRequest is the payload for adding a vocabulary entry
type CreateGameTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// ensureDefaults seeds the six default types the first time the vocabulary
// is accessed
func ensureDefaults() error {
	var count int64
	if err := database.DB.Model(&models.GameType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, gameType := range models.DefaultGameTypes {
		seed := gameType
		if err := database.DB.Create(&seed).Error; err != nil {
			return err
		}
	}
	log.Println("Default game types created")
	return nil
}

// GetGameTypes lists the vocabulary in display order
// @Summary List game types
// @Description Get all game types ordered by their sort order; seeds the defaults when the vocabulary is empty
// @Tags GameTypes
// @Produce json
// @Success 200 {array} models.GameType
// @Failure 500 {object} map[string]string
// @Router /game-types [get]
func GetGameTypes(c *gin.Context) {
	if err := ensureDefaults(); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchTypesFailed)
		return
	}

	var types []models.GameType
	if err := database.DB.Order("sort_order").Find(&types).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchTypesFailed)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateGameType adds a vocabulary entry at the end of the display order
// @Summary Create game type
// @Description Add a new game type; the name must not already exist
// @Tags GameTypes
// @Accept json
// @Produce json
// @Param request body CreateGameTypeRequest true "Game type name"
// @Success 201 {object} models.GameType
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-types [post]
// @Security Bearer
func CreateGameType(c *gin.Context) {
	var req CreateGameTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	if err := database.DB.Model(&models.GameType{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateTypeFailed)
		return
	}
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrDuplicateTypeName)
		return
	}

	var maxOrder int64
	row := database.DB.Model(&models.GameType{}).Select("COALESCE(MAX(sort_order), 0)").Row()
	if err := row.Scan(&maxOrder); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateTypeFailed)
		return
	}

	gameType := models.GameType{Name: req.Name, SortOrder: int(maxOrder) + 1}
	if err := database.DB.Create(&gameType).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreateTypeFailed)
		return
	}

	c.JSON(http.StatusCreated, gameType)
}

// DeleteGameType removes a vocabulary entry, except the protected sentinel
// @Summary Delete game type
// @Description Delete a game type; "Other" is protected and cannot be removed
// @Tags GameTypes
// @Param id path string true "Game type ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /game-types/{id} [delete]
// @Security Bearer
func DeleteGameType(c *gin.Context) {
	var gameType models.GameType
	if err := database.DB.Where("id = ?", c.Param("id")).First(&gameType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrTypeNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrDeleteTypeFailed)
		}
		return
	}

	if gameType.Name == models.ProtectedGameType {
		response.Error(c, http.StatusForbidden, ErrTypeProtected)
		return
	}

	if err := database.DB.Delete(&gameType).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeleteTypeFailed)
		return
	}

	c.Status(http.StatusNoContent)
}
