package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ozancz/sozluk/pkg/helpers"
	"github.com/ozancz/sozluk/pkg/response"
)

// Auth validates the session cookie and ensures the session is still live in
// Redis, so logout takes effect before the token expires. On success it sets
// userID, userName and userDisplayName in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("session_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid session token", nil)
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			n, err := rdb.Exists(c.Request.Context(), key).Result()
			if err != nil || n == 0 {
				response.AbortError(c, http.StatusUnauthorized, "session expired", nil)
				return
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Username)
		c.Set("userDisplayName", claims.DisplayName)
		c.Set("isAdmin", claims.IsAdmin)
		c.Set("isModerator", claims.IsModerator)
		c.Next()
	}
}
