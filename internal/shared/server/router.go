package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/auth"
	"tailormake-backend/internal/resumes"
	"tailormake-backend/internal/shared/config"
	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/server/respond"
	"tailormake-backend/internal/shared/session"
	"tailormake-backend/internal/tailoring"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config           config.Config
	Codec            *session.Codec
	AuthHandler      *auth.Handler
	GoogleWebFlow    *auth.GoogleWebFlow
	ResumesHandler   *resumes.Handler
	TailoringHandler *tailoring.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.SessionAuth(deps.Codec),
	)

	root := r.Group("")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy"})
	})

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(root)
	}
	if deps.GoogleWebFlow != nil {
		deps.GoogleWebFlow.RegisterRoutes(root)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(root)
	}
	if deps.TailoringHandler != nil {
		deps.TailoringHandler.RegisterRoutes(root)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
