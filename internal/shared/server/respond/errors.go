package respond

import (
	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/shared/telemetry"
)

// ErrorResponse is the client-facing error body. A single detail string keeps
// failure causes indistinguishable where the API demands it (auth, not-found).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, detail string) {
	fields := map[string]any{
		"status":     status,
		"detail":     detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}
