package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/auth"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test_secret"

func setup(t *testing.T) *gin.Engine {
	testutil.SetupDB(t)
	testutil.SetupRedis(t)

	hash, err := services.HashPassword("open sesame")
	require.NoError(t, err)
	cfg := testutil.Config()
	cfg.JWTSecret = secret
	cfg.ConsolePasswordHash = hash
	services.Configure(cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth.RegisterRoutes(r.Group("/api"), secret)
	return r
}

func login(r *gin.Engine, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(auth.LoginInput{Password: password})
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func revoke(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/revoke", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginAndRevoke(t *testing.T) {
	r := setup(t)

	w := login(r, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login(r, "open sesame")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data auth.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	w = revoke(r, resp.Data.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = revoke(r, resp.Data.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has been revoked")
}

func TestLoginWhenAuthDisabled(t *testing.T) {
	r := setup(t)
	services.Configure(&config.Config{})

	w := login(r, "open sesame")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
