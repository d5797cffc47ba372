package prompt

import (
	"net/http"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/common"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPrompts godoc
// @Summary List prompts
// @Description Active prompts, newest first, each with the content of its latest version
// @Tags prompts
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Prompt}
// @Failure 500 {object} utils.Response
// @Router /prompts [get]
func ListPrompts(c *gin.Context) {
	prompts, err := services.ListPrompts()
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", prompts))
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Description Create a prompt and its first version
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts [post]
func CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := services.CreatePrompt(req.Name, req.Content, models.PromptSourceUser)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Prompt created successfully", prompt))
}

// GetPrompt godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func GetPrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	prompt, err := services.GetPrompt(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", prompt))
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Description Append a new version with the given content
// @Tags prompts
// @Accept json
// @Produce json
// @Param id path int true "Prompt ID"
// @Param request body UpdatePromptRequest true "Update Prompt Request"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [put]
func UpdatePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req UpdatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := services.UpdatePrompt(id, req.Content, req.Name)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt updated successfully", prompt))
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Description Soft delete; versions and shots are kept
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [delete]
func DeletePrompt(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	if err := services.DeletePrompt(id); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt deleted successfully", nil))
}

// ListVersions godoc
// @Summary List prompt versions
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=[]models.PromptVersion}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/versions [get]
func ListVersions(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	versions, err := services.ListPromptVersions(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", versions))
}

// ListShots godoc
// @Summary List prompt executions
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=[]models.PromptShot}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id}/shots [get]
func ListShots(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	shots, err := services.ListPromptShots(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", shots))
}
