package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-to-deploy/forge-backend/internal/generation/analyst"
	"github.com/idea-to-deploy/forge-backend/internal/generation/designer"
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
	"github.com/idea-to-deploy/forge-backend/internal/projects/repository"
	"github.com/idea-to-deploy/forge-backend/internal/projects/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewStore(t.TempDir())
	require.NoError(t, err)
	log := logger.NewNop()
	svc := service.NewProjectService(store, analyst.New(nil, log), designer.New(designer.Curated{}), log)

	r := gin.New()
	New(svc, log).Register(r.Group("/api/projects"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProject(t *testing.T, r *gin.Engine, idea string) domain.Project {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"idea": idea})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateProjectEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("creates project", func(t *testing.T) {
		p := createProject(t, r, "An online shop for plants")
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, domain.StatusNew, p.Status)
	})

	t.Run("rejects empty idea", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"idea": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAndGetEndpoints(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, "A chat app")

	w := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, "A chat app")

	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	// deleting again is still a success
	w = doJSON(t, r, http.MethodDelete, "/api/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPipelineEndpoints(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, "An online shop for plants")

	t.Run("design before analysis conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/design", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("analyze returns docs", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/analyze", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Success bool                  `json:"success"`
			Docs    []domain.GeneratedDoc `json:"docs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Docs, len(domain.Categories))
	})

	t.Run("design returns visuals", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/design", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Success bool             `json:"success"`
			Visuals []domain.UIAsset `json:"visuals"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Visuals)
	})

	t.Run("build returns result", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/build", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result domain.BuildResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, "success", result.Status)
		assert.NotEmpty(t, result.Files)
	})

	t.Run("docs and visuals readable afterwards", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/"+p.ID+"/docs", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, r, http.MethodGet, "/api/projects/"+p.ID+"/visuals", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetBuildEndpoint(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, "A chat app")

	t.Run("null before first build", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/"+p.ID+"/build", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("unknown project", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/missing/build", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateBuildFileEndpoint(t *testing.T) {
	r := newTestRouter(t)
	p := createProject(t, r, "A chat app")

	w := doJSON(t, r, http.MethodPost, "/api/projects/"+p.ID+"/build", nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("patches known file", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID+"/build/file", gin.H{
			"path":    "package.json",
			"content": `{"patched":true}`,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID+"/build/file", gin.H{
			"path":    "nope.ts",
			"content": "x",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing path is 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID+"/build/file", gin.H{
			"content": "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
