package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/server/respond"
	"tailormake-backend/internal/shared/session"
	"tailormake-backend/internal/users"
)

type Handler struct {
	Verifier TokenVerifier
	Users    *users.Service
	Codec    *session.Codec
	Env      string
}

func NewHandler(verifier TokenVerifier, usersSvc *users.Service, codec *session.Codec, env string) *Handler {
	return &Handler{Verifier: verifier, Users: usersSvc, Codec: codec, Env: env}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/google", h.login)
	rg.GET("/auth/me", h.me)
	rg.POST("/auth/logout", h.logout)
}

type loginRequest struct {
	Token string `json:"token"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		respond.Error(c, http.StatusBadRequest, "Missing identity token")
		return
	}

	identity, err := h.Verifier.Verify(c.Request.Context(), req.Token)
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	user, _, err := h.Users.LoginOrCreate(c.Request.Context(), identity.Subject, identity.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.Codec.Issue(user.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to issue session")
		return
	}

	setSessionCookie(c, token, h.Env)
	respond.JSON(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load user")
		return
	}
	respond.JSON(c, http.StatusOK, user)
}

// logout is reachable without a valid session so a stale cookie can always be
// cleared.
func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c, h.Env)
	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
