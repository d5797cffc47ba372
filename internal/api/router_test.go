package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterOpenWithoutSecret(t *testing.T) {
	testutil.SetupDB(t)
	cfg := testutil.Config()
	services.Configure(cfg)
	gin.SetMode(gin.TestMode)

	r := NewRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/api/prompts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouterRequiresTokenWithSecret(t *testing.T) {
	testutil.SetupDB(t)
	cfg := testutil.Config()
	cfg.JWTSecret = "router_secret"
	services.Configure(cfg)
	gin.SetMode(gin.TestMode)

	r := NewRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken(cfg.JWTSecret, services.ConsoleSubject, time.Hour)
	require.NoError(t, err)
	req, _ = http.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerServed(t *testing.T) {
	cfg := testutil.Config()
	gin.SetMode(gin.TestMode)

	r := NewRouter(cfg)

	req, _ := http.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/generate-prompt/stream/direct")
}
