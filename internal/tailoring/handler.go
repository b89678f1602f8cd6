package tailoring

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tailormake-backend/internal/pipeline"
	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/server/respond"
	"tailormake-backend/internal/tailoredresumes"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor", h.tailor)
	rg.GET("/tailored-resumes", h.list)
	rg.GET("/tailored-resumes/:id/pdf", h.pdf)
}

func (h *Handler) tailor(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	intake := Intake{
		Topic:          req.Topic,
		WorkExperience: req.WorkExperience,
		JobLink:        req.JobLink,
	}
	if req.Resume != nil {
		data, err := decodeResume(req.Resume.Base64)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "Invalid resume encoding")
			return
		}
		intake.ResumeName = req.Resume.Name
		intake.ResumeType = req.Resume.Type
		intake.ResumeBytes = data
	}

	userID := middleware.UserIDFromContext(c)
	out, err := h.Svc.Tailor(c.Request.Context(), userID, intake)
	if err != nil {
		if errors.Is(err, pipeline.ErrPipelineFailure) {
			respond.Error(c, http.StatusBadGateway, "Resume generation failed")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to tailor resume")
		return
	}

	respond.JSON(c, http.StatusOK, tailorResponse{
		OK: true,
		Result: tailorResult{
			ID:        out.Artifact.ID,
			Filename:  out.Artifact.FileName,
			PDFBase64: base64.StdEncoding.EncodeToString(out.PDF),
			PDFURL:    "/tailored-resumes/" + out.Artifact.ID + "/pdf",
		},
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	artifacts, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list tailored resumes")
		return
	}

	summaries := make([]artifactSummary, 0, len(artifacts))
	for _, a := range artifacts {
		summaries = append(summaries, artifactSummary{
			ID:        a.ID,
			Filename:  a.FileName,
			JobLink:   a.JobLink,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respond.JSON(c, http.StatusOK, summaries)
}

func (h *Handler) pdf(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid tailored resume ID")
		return
	}

	userID := middleware.UserIDFromContext(c)
	artifact, data, err := h.Svc.OpenPDF(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, tailoredresumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Tailored resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load tailored resume")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
