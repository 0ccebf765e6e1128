package middleware

import (
	"errors"

	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserIDKey = "user_id"
	ContextUserKey   = "current_user"
)

// AuthMiddleware verifies the bearer token and resolves the current user,
// injecting it into the request context. Missing, malformed and expired
// tokens, and tokens whose user no longer exists, are all a 401.
func AuthMiddleware(users *usecase.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A bare token without the "Bearer " prefix is also accepted.
		authHeader := c.GetHeader("Authorization")

		user, err := users.ResolveToken(c.Request.Context(), authHeader)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenMissing):
				utils.Unauthorized(c, "Token is missing")
			case errors.Is(err, services.ErrTokenExpired):
				utils.Unauthorized(c, "Token has expired")
			case errors.Is(err, services.ErrTokenMalformed):
				utils.Unauthorized(c, "Invalid token")
			case errors.Is(err, usecase.ErrUserNotFound):
				utils.Unauthorized(c, "User not found")
			default:
				utils.InternalError(c, "Failed to resolve user")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.UserID)
		c.Set(ContextUserKey, user)

		c.Next()
	}
}
