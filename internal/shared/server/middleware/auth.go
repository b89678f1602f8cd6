package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/shared/server/respond"
	"tailormake-backend/internal/shared/session"
)

const userIDKey = "userId"

// SessionAuth validates the session cookie and stores the user ID in context.
// Login, logout and health stay reachable without a session.
func SessionAuth(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if path == "/health" || path == "/auth/logout" || strings.HasPrefix(path, "/auth/google") {
			c.Next()
			return
		}

		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			respond.Error(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := codec.Verify(token)
		if err != nil {
			// Missing, tampered and expired cookies are deliberately
			// indistinguishable to the client.
			respond.Error(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
