package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/cat-hotel/internal/config"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.FromError(c, httperr.ErrUnauthorized("missing_authorization"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.FromError(c, httperr.ErrUnauthorized("invalid_authorization"))
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.FromError(c, httperr.ErrUnauthorized("invalid_token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.FromError(c, httperr.ErrUnauthorized("invalid_token"))
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok || userID <= 0 {
			httperr.FromError(c, httperr.ErrUnauthorized("invalid_token"))
			return
		}
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			httperr.FromError(c, httperr.ErrForbidden("admin_required"))
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextUserRole) == models.RoleAdmin
}
