package ai_model_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/ai_model"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modelView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ModelID   string `json:"model_id"`
	APIKey    string `json:"api_key"`
	APIType   string `json:"api_type"`
	IsDefault bool   `json:"is_default"`
}

func newRouter(t *testing.T) *gin.Engine {
	testutil.SetupDB(t)
	services.Configure(testutil.Config())
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ai_model.RegisterRoutes(r.Group("/api"))
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

func create(t *testing.T, r *gin.Engine, req ai_model.CreateModelRequest) modelView {
	t.Helper()
	w := do(r, http.MethodPost, "/api/models", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Data modelView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func list(t *testing.T, r *gin.Engine) []modelView {
	t.Helper()
	w := do(r, http.MethodGet, "/api/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []modelView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreateModelMasksKey(t *testing.T) {
	r := newRouter(t)

	m := create(t, r, ai_model.CreateModelRequest{
		Name: "gpt", ModelID: "gpt-4o", BaseURL: "https://api.openai.com/v1",
		APIKey: "sk-abcdefghijklmnop", APIType: "open_ai", IsDefault: true,
	})
	assert.Equal(t, "sk-a*******mnop", m.APIKey)
	assert.Equal(t, "openai", m.APIType)
	assert.True(t, m.IsDefault)
}

func TestCreateModelValidation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/models", ai_model.CreateModelRequest{Name: "x", ModelID: "y", APIType: "cohere"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/models", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "model_id")
}

func TestSetDefaultLeavesExactlyOne(t *testing.T) {
	r := newRouter(t)

	create(t, r, ai_model.CreateModelRequest{Name: "a", ModelID: "gpt-4o", IsDefault: true})
	b := create(t, r, ai_model.CreateModelRequest{Name: "b", ModelID: "gpt-4o-mini"})

	w := do(r, http.MethodPost, fmt.Sprintf("/api/models/%d/default", b.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	defaults := 0
	for _, m := range list(t, r) {
		if m.IsDefault {
			defaults++
			assert.Equal(t, b.ID, m.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	w = do(r, http.MethodGet, "/api/models/default", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"b"`)
}

func TestDeleteDefaultModelConflicts(t *testing.T) {
	r := newRouter(t)

	a := create(t, r, ai_model.CreateModelRequest{Name: "a", ModelID: "gpt-4o", IsDefault: true})
	b := create(t, r, ai_model.CreateModelRequest{Name: "b", ModelID: "gpt-4o-mini"})

	w := do(r, http.MethodDelete, fmt.Sprintf("/api/models/%d", a.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "default model cannot be deleted")
	assert.Len(t, list(t, r), 2)

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/models/%d", b.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, list(t, r), 1)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/models/%d", b.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateModelPartial(t *testing.T) {
	r := newRouter(t)

	a := create(t, r, ai_model.CreateModelRequest{Name: "a", ModelID: "gpt-4o", APIKey: "sk-original-key-1234", IsDefault: true})

	w := do(r, http.MethodPut, fmt.Sprintf("/api/models/%d", a.ID), map[string]interface{}{"model_id": "gpt-4.1", "is_default": false})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data modelView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.Data.Name)
	assert.Equal(t, "gpt-4.1", resp.Data.ModelID)
	assert.Equal(t, "sk-o*******1234", resp.Data.APIKey)
	assert.True(t, resp.Data.IsDefault)
}

func TestGetDefaultModelMissing(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/models/default", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no default model configured")
}
