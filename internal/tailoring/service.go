package tailoring

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tailormake-backend/internal/extract"
	"tailormake-backend/internal/pipeline"
	"tailormake-backend/internal/render"
	"tailormake-backend/internal/shared/storage/object"
	"tailormake-backend/internal/shared/util"
	"tailormake-backend/internal/tailoredresumes"
)

// Intake is the validated input of a tailoring run.
type Intake struct {
	Topic          string
	WorkExperience string
	JobLink        string
	ResumeName     string
	ResumeType     string
	ResumeBytes    []byte
}

// Output is the stored artifact plus its rendered bytes for the immediate
// response.
type Output struct {
	Artifact tailoredresumes.Artifact
	PDF      []byte
}

type Service struct {
	Pipeline  pipeline.Client
	Store     object.ObjectStore
	Repo      tailoredresumes.Repo
	GitHubURL string
	Writeup   string
}

func NewService(p pipeline.Client, store object.ObjectStore, repo tailoredresumes.Repo, githubURL, writeup string) *Service {
	return &Service{Pipeline: p, Store: store, Repo: repo, GitHubURL: githubURL, Writeup: writeup}
}

// Tailor runs the full flow: extract resume text, invoke the generation
// pipeline, render the PDF, store the bytes, and record the artifact. The
// pipeline call is synchronous and unbounded; a hung provider hangs the
// request.
func (s *Service) Tailor(ctx context.Context, userID string, intake Intake) (Output, error) {
	resumeText := ""
	if len(intake.ResumeBytes) > 0 {
		resumeText = extract.Text(ctx, intake.ResumeBytes, intake.ResumeType, intake.ResumeName)
	}

	// The job reference handed to the pipeline is the link when given,
	// otherwise the free-text topic.
	jobRef := strings.TrimSpace(intake.JobLink)
	if jobRef == "" {
		jobRef = strings.TrimSpace(intake.Topic)
	}

	doc, err := s.Pipeline.Run(ctx, pipeline.JobSpec{
		JobLink:     jobRef,
		WorkHistory: intake.WorkExperience,
		ResumeText:  resumeText,
		GitHubURL:   s.GitHubURL,
		Writeup:     s.Writeup,
	})
	if err != nil {
		return Output{}, err
	}

	pdfBytes, err := render.PDF(doc)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", pipeline.ErrPipelineFailure, err)
	}

	fileName := artifactFileName(doc.Headline, intake.Topic)
	storageKey, sizeBytes, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(pdfBytes))
	if err != nil {
		return Output{}, fmt.Errorf("store artifact: %w", err)
	}

	artifact := tailoredresumes.Artifact{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		StorageKey: storageKey,
		SizeBytes:  sizeBytes,
		JobLink:    intake.JobLink,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, artifact); err != nil {
		return Output{}, fmt.Errorf("record artifact: %w", err)
	}

	return Output{Artifact: artifact, PDF: pdfBytes}, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]tailoredresumes.Artifact, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// OpenPDF returns the artifact metadata and a reader over its stored bytes.
func (s *Service) OpenPDF(ctx context.Context, userID, artifactID string) (tailoredresumes.Artifact, []byte, error) {
	artifact, err := s.Repo.GetByID(ctx, userID, artifactID)
	if err != nil {
		return tailoredresumes.Artifact{}, nil, err
	}
	body, err := s.Store.Open(ctx, artifact.StorageKey)
	if err != nil {
		return tailoredresumes.Artifact{}, nil, fmt.Errorf("open artifact: %w", err)
	}
	defer body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return tailoredresumes.Artifact{}, nil, fmt.Errorf("read artifact: %w", err)
	}
	return artifact, buf.Bytes(), nil
}

// artifactFileName derives a filesystem-friendly name from the generated
// headline, falling back to the topic and then a constant.
func artifactFileName(headline, topic string) string {
	base := strings.TrimSpace(headline)
	if base == "" {
		base = strings.TrimSpace(topic)
	}
	if base == "" {
		base = "tailored resume"
	}
	base = strings.ToLower(base)
	base = strings.Join(strings.Fields(base), "_")
	clean, err := util.SanitizeFileName(base)
	if err != nil {
		clean = "tailored_resume"
	}
	return clean + ".pdf"
}

// decodeResume accepts raw base64 or a data URL.
func decodeResume(raw string) ([]byte, error) {
	payload := strings.TrimSpace(raw)
	if payload == "" {
		return nil, nil
	}
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return data, nil
}
