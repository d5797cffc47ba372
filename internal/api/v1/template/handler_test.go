package template_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/template"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	testutil.SetupDB(t)
	testutil.SetupRedis(t)
	services.Configure(testutil.Config())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	template.RegisterRoutes(r.Group("/api"))
	return r
}

func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSeededTemplates(t *testing.T) {
	r := newRouter(t)
	require.NoError(t, services.SeedDefaultTemplates())

	w := do(r, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []template.TemplateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Role-Based", resp.Data[2].Name)
	assert.Equal(t, []string{"role", "instruction"}, resp.Data[2].Variables)
}

func TestTemplateLifecycle(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/templates", template.CreateTemplateRequest{Name: "poem", Content: "Write about {{ topic }}"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data template.TemplateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := "/api/templates/" + strconv.Itoa(int(created.Data.ID))

	content := "Write a haiku about {{ topic }}"
	w = do(r, http.MethodPut, path, template.UpdateTemplateRequest{Content: &content})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Data template.TemplateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "poem", got.Data.Name)
	assert.Equal(t, content, got.Data.Content)

	w = do(r, http.MethodPost, path+"/render", template.RenderTemplateRequest{Variables: map[string]string{"topic": "rain"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Write a haiku about rain")

	w = do(r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTemplateValidation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/templates", map[string]string{"content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field 'name' is required")
}
