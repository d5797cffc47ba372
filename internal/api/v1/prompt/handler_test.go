package prompt_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/prompt"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	testutil.SetupDB(t)
	services.Configure(testutil.Config())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	prompt.RegisterRoutes(r.Group("/api"))
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePrompt(t *testing.T) {
	setupTestDBOnly(t)
	gin.SetMode(gin.TestMode)

	body, _ := json.Marshal(prompt.CreatePromptRequest{Name: "greeting", Content: "Say hello"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/prompts", bytes.NewBuffer(body))

	prompt.CreatePrompt(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Prompt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "greeting", resp.Data.Name)
	assert.Equal(t, "Say hello", resp.Data.Content)
	assert.Equal(t, 1, resp.Data.LatestVersion)
}

func setupTestDBOnly(t *testing.T) {
	testutil.SetupDB(t)
	services.Configure(testutil.Config())
}

func TestCreatePromptValidation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/prompts", map[string]string{"name": "no content"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field 'content' is required")
}

func TestPromptLifecycle(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/prompts", prompt.CreatePromptRequest{Name: "p", Content: "v1"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.Prompt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := "/api/prompts/" + strconv.Itoa(int(created.Data.ID))

	w = do(r, http.MethodPut, path, prompt.UpdatePromptRequest{Content: "v2"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Data models.Prompt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "v2", got.Data.Content)
	assert.Equal(t, 2, got.Data.LatestVersion)

	w = do(r, http.MethodGet, path+"/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var versions struct {
		Data []models.PromptVersion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &versions))
	assert.Len(t, versions.Data, 2)

	w = do(r, http.MethodGet, path+"/shots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = do(r, http.MethodGet, "/api/prompts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.Prompt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	w = do(r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "prompt not found")

	w = do(r, http.MethodGet, "/api/prompts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
