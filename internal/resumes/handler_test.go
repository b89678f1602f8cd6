package resumes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailormake-backend/internal/shared/server/middleware"
	"tailormake-backend/internal/shared/session"
)

func newResumeRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := session.NewCodec("test-secret", "test")
	require.NoError(t, err)

	handler := NewHandler(NewService(NewMemoryRepo()))
	r := gin.New()
	r.Use(middleware.SessionAuth(codec))
	handler.RegisterRoutes(r.Group(""))

	token, err := codec.Issue("user-a")
	require.NoError(t, err)
	return r, token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
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

func TestResumeCRUDLifecycle(t *testing.T) {
	r, token := newResumeRouter(t)

	w := doJSON(r, http.MethodPost, "/resumes", token, `{"target_role":"Backend Intern","content":{"summary":"Strong coder"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created Resume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Backend Intern", created.TargetRole)
	assert.Equal(t, created.DateUploaded, created.UpdatedAt)

	w = doJSON(r, http.MethodGet, "/resumes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	w = doJSON(r, http.MethodPut, "/resumes/"+created.ID, token, `{"target_role":"Platform Engineer"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated Resume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Platform Engineer", updated.TargetRole)
	assert.Equal(t, map[string]any{"summary": "Strong coder"}, updated.Content)

	w = doJSON(r, http.MethodDelete, "/resumes/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Resume deleted successfully"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/resumes/"+created.ID, token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Resume not found"}`, w.Body.String())
}

func TestResumeMalformedIDIsBadRequest(t *testing.T) {
	r, token := newResumeRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doJSON(r, method, "/resumes/not-a-uuid", token, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"detail":"Invalid resume ID"}`, w.Body.String())
	}

	w := doJSON(r, http.MethodPut, "/resumes/not-a-uuid", token, `{"target_role":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeCreateRequiresTargetRole(t *testing.T) {
	r, token := newResumeRouter(t)

	w := doJSON(r, http.MethodPost, "/resumes", token, `{"content":{"summary":"x"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeRoutesRequireSession(t *testing.T) {
	r, _ := newResumeRouter(t)

	w := doJSON(r, http.MethodGet, "/resumes", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
}

func TestResumeListIsEmptyArrayNotNull(t *testing.T) {
	r, token := newResumeRouter(t)

	w := doJSON(r, http.MethodGet, "/resumes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
