package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// AuthCookieName is the cookie carrying the signed token
	AuthCookieName = "auth_token"

	userContextKey = "user"

	ErrNoTokenProvided = "No token provided"
	ErrInvalidToken    = "Invalid token"
	ErrUserNotFound    = "User not found"
	ErrAdminRequired   = "Administrator rights required"
)

// CreateToken signs a JWT for the given user ID
func CreateToken(userID string, lifetime time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(lifetime).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(config.JWTSecret))
}

// ParseToken validates a signed token and returns the user ID it carries
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New(ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New(ErrInvalidToken)
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New(ErrInvalidToken)
	}
	return userID, nil
}

// tokenFromRequest reads the token from the auth cookie or, failing that,
// from a Bearer Authorization header
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token and loads the
// authenticated user into the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoTokenProvided})
			return
		}

		userID, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken})
			return
		}

		var user models.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUserNotFound})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// AdminMiddleware requires AuthMiddleware before it and rejects non-admins
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			return // Error already handled
		}
		if !user.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrAdminRequired})
			return
		}
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user set by AuthMiddleware.
// When no user is present the 401 response is already written, callers just
// return.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, ErrNoTokenProvided)
		return nil, errors.New(ErrNoTokenProvided)
	}
	user, ok := value.(*models.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, ErrInvalidToken)
		return nil, errors.New(ErrInvalidToken)
	}
	return user, nil
}

// CurrentUser returns the user from the auth token without requiring it:
// anonymous requests return nil. Used where identity only enriches the
// request, like visit attribution.
func CurrentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(userContextKey); exists {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}

	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return nil
	}
	userID, err := ParseToken(tokenString)
	if err != nil {
		return nil
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil
	}
	return &user
}
