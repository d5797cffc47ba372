package ai_assistant

import (
	"net/http"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/common"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/gin-gonic/gin"
)

// ExecutePrompt godoc
// @Summary Execute a prompt
// @Description Run a composed prompt against a model. With prompt_id the run is recorded as a shot of that prompt.
// @Tags ai_assistant
// @Accept json
// @Produce json
// @Param request body ExecuteRequest true "Execute Request"
// @Success 200 {object} utils.Response{data=services.ExecuteResult}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /execute [post]
func ExecutePrompt(c *gin.Context) {
	var req ExecuteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := services.ExecutePrompt(c.Request.Context(), services.ExecuteInput{
		Prompt:        req.Prompt,
		Model:         req.Model,
		ModelConfigID: req.ModelConfigID,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
		PromptID:      req.PromptID,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", result))
}
