package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/shared/session"
)

// setSessionCookie attaches the signed session token. Secure is flipped on
// outside local development so the cookie survives only over TLS there.
func setSessionCookie(c *gin.Context, token, env string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(session.TTL.Seconds()), "/", "", env == "production", true)
}

func clearSessionCookie(c *gin.Context, env string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", env == "production", true)
}
