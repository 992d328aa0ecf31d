package users

import (
	"errors"
	"net/http"
	"strings"

	"api/database"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Constants for error messages
const (
	ErrUserNotFound       = "User not found"
	ErrFailedToGetUsers   = "Failed to fetch users"
	ErrUsernameInUse      = "Username already exists"
	ErrHashPasswordFailed = "Failed to hash password"
	ErrUserCreateFailed   = "Failed to create user"
	ErrFailedToDeleteUser = "Failed to delete user"
	ErrResetFailed        = "Failed to reset password"
)

// CreateUserRequest is the payload of the admin-only account creation form
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Admin    bool   `json:"admin"`
}

// GetUsers lists all accounts
// @Summary List users
// @Description Get all user accounts; password hashes are never serialized
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/ [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("username").Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser creates a new account
// @Summary Create user
// @Description Create a user account; the username is lower-cased for case-insensitive matching
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/ [post]
// @Security Bearer
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	if err := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Admin:        req.Admin,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ResetPassword replaces an account's password with a generated temporary one
// @Summary Reset user password
// @Description Generate a temporary password for the account and return it once; the old password stops working immediately
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/{id}/reset-password [post]
// @Security Bearer
func ResetPassword(c *gin.Context) {
	var target models.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrResetFailed)
		}
		return
	}

	password, hash, err := utils.CreateDefaultPassword()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrResetFailed)
		return
	}

	if err := database.DB.Model(&target).Update("password_hash", hash).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrResetFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"temporary_password": password})
}

// DeleteUser deletes an account by ID
// @Summary Delete user
// @Description Delete a user account by ID
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	var target models.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
		}
		return
	}

	if err := database.DB.Delete(&target).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
		return
	}

	c.Status(http.StatusNoContent)
}
