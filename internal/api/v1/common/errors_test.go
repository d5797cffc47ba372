package common

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	invalid := models.ValidateModelConfig(&models.ModelConfig{})

	tests := []struct {
		err  error
		want int
	}{
		{services.ErrPromptNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", services.ErrTemplateNotFound), http.StatusNotFound},
		{services.ErrModelNotFound, http.StatusNotFound},
		{services.ErrDefaultModelDelete, http.StatusConflict},
		{services.ErrNoDefaultModel, http.StatusBadRequest},
		{services.ErrEmptyGeneration, http.StatusBadRequest},
		{invalid, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		raw string
		ok  bool
	}{{"12", true}, {"0", false}, {"abc", false}, {"-1", false}} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := ParseID(c)
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.Equal(t, uint(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
