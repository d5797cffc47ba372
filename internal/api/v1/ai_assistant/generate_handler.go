package ai_assistant

import (
	"errors"
	"net/http"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeneratePrompt godoc
// @Summary Generate a prompt
// @Description Ask the default model to draft a prompt from a description, optionally shaped by a template. The result may be saved as a prompt.
// @Tags ai_assistant
// @Accept json
// @Produce json
// @Param request body GeneratePromptRequest true "Generate Prompt Request"
// @Success 200 {object} utils.Response{data=services.GenerateResult}
// @Failure 400 {object} utils.Response{data=GenerationErrorData}
// @Failure 500 {object} utils.Response{data=GenerationErrorData}
// @Router /generate-prompt [post]
func GeneratePrompt(c *gin.Context) {
	var req GeneratePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	lang, err := models.ParseLanguage(req.Language)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	result, err := services.GeneratePrompt(c.Request.Context(), services.GenerateInput{
		Description: req.UserDescription,
		TemplateID:  req.TemplateID,
		Temperature: req.Temperature,
		Language:    lang,
		SavePrompt:  req.SavePrompt,
		PromptName:  req.PromptName,
	})
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", result))
}

func isValueError(err error) bool {
	return errors.Is(err, services.ErrTemplateNotFound) ||
		errors.Is(err, services.ErrEmptyGeneration) ||
		errors.Is(err, services.ErrNoDefaultModel) ||
		errors.Is(err, services.ErrModelNotFound)
}

func respondGenerationError(c *gin.Context, err error) {
	var langErr *models.LanguageError
	if isValueError(err) || errors.As(err, &langErr) {
		logger.Log.Warn("Value error in prompt generation", zap.Error(err))
		c.JSON(http.StatusBadRequest, utils.NewErrorResponseWithData(http.StatusBadRequest, err.Error(), GenerationErrorData{
			Error:       err.Error(),
			ErrorType:   ErrorTypeValue,
			Suggestions: valueErrorSuggestions,
		}))
		return
	}

	logger.Log.Error("Error in prompt generation", zap.Error(err))
	msg := "An error occurred during prompt generation: " + err.Error()
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponseWithData(http.StatusInternalServerError, msg, GenerationErrorData{
		Error:       msg,
		ErrorType:   ErrorTypeSystem,
		Suggestions: systemErrorSuggestions,
	}))
}
