package tailoring

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailormake-backend/internal/pipeline"
	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/session"
)

func newTailoringRouter(t *testing.T, client pipeline.Client) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := session.NewCodec("test-secret", "test")
	require.NoError(t, err)

	svc, _ := newTestService(t, client)
	handler := NewHandler(svc)

	r := gin.New()
	r.Use(middleware.SessionAuth(codec))
	handler.RegisterRoutes(r.Group(""))

	token, err := codec.Issue("user-a")
	require.NoError(t, err)
	return r, token
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestTailorEndpointRoundTrip(t *testing.T) {
	r, token := newTailoringRouter(t, pipeline.Placeholder{})

	w := do(r, http.MethodPost, "/tailor", token, `{"topic":"Backend Engineer","jobLink":"https://example.com/job/1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp tailorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.Result.ID)
	assert.Equal(t, "tailored_resume.pdf", resp.Result.Filename)
	assert.Equal(t, "/tailored-resumes/"+resp.Result.ID+"/pdf", resp.Result.PDFURL)

	pdfBytes, err := base64.StdEncoding.DecodeString(resp.Result.PDFBase64)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF-"))

	// Listing shows the new artifact.
	w = do(r, http.MethodGet, "/tailored-resumes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []artifactSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, resp.Result.ID, list[0].ID)
	assert.Equal(t, "https://example.com/job/1", list[0].JobLink)

	// The stored PDF streams back inline.
	w = do(r, http.MethodGet, resp.Result.PDFURL, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestTailorPipelineFailureIsBadGateway(t *testing.T) {
	r, token := newTailoringRouter(t, failingPipeline{})

	w := do(r, http.MethodPost, "/tailor", token, `{"jobLink":"https://example.com/job/1"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"detail":"Resume generation failed"}`, w.Body.String())
}

func TestTailorInvalidResumeEncoding(t *testing.T) {
	r, token := newTailoringRouter(t, pipeline.Placeholder{})

	w := do(r, http.MethodPost, "/tailor", token, `{"resume":{"name":"r.pdf","type":"application/pdf","base64":"%%%bad%%%"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid resume encoding"}`, w.Body.String())
}

func TestTailoredResumePDFMalformedID(t *testing.T) {
	r, token := newTailoringRouter(t, pipeline.Placeholder{})

	w := do(r, http.MethodGet, "/tailored-resumes/not-a-uuid/pdf", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTailoredResumePDFNotFound(t *testing.T) {
	r, token := newTailoringRouter(t, pipeline.Placeholder{})

	w := do(r, http.MethodGet, "/tailored-resumes/11111111-1111-1111-1111-111111111111/pdf", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTailorRequiresSession(t *testing.T) {
	r, _ := newTailoringRouter(t, pipeline.Placeholder{})

	w := do(r, http.MethodPost, "/tailor", "", `{"topic":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
}
