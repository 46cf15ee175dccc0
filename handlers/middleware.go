package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// Authenticator verifies a bearer token and extracts the caller's user ID.
type Authenticator interface {
	VerifyToken(token string) (uuid.UUID, error)
}

// Authorize is a gin middleware enforcing the bearer-token contract on
// protected routes. Any verification failure aborts with 401 before the
// handler runs.
func Authorize(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing bearer token",
				},
			})
			return
		}

		userID, err := auth.VerifyToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user ID set by Authorize
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
