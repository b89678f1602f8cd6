package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
}

type createRequest struct {
	TargetRole string         `json:"target_role"`
	Content    map[string]any `json:"content"`
}

type updateRequest struct {
	TargetRole *string        `json:"target_role"`
	Content    map[string]any `json:"content"`
}

// resumeID parses the path parameter up front so malformed IDs are a 400
// rather than a storage miss.
func resumeID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid resume ID")
		return "", false
	}
	return id, true
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Create(c.Request.Context(), userID, req.TargetRole, req.Content)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "target_role is required")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to create resume")
		return
	}
	respond.JSON(c, http.StatusOK, resume)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	summaries, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	respond.JSON(c, http.StatusOK, summaries)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}
	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load resume")
		return
	}
	respond.JSON(c, http.StatusOK, resume)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(c)
	resume, err := h.Svc.Update(c.Request.Context(), userID, id, Update{
		TargetRole: req.TargetRole,
		Content:    req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "target_role must not be empty")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to update resume")
		}
		return
	}
	respond.JSON(c, http.StatusOK, resume)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := resumeID(c)
	if !ok {
		return
	}
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}
