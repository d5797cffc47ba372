package ai_model

import (
	"net/http"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/common"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetModels godoc
// @Summary List model configs
// @Description Active model endpoints, default first. API keys are masked.
// @Tags models
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.ModelConfig}
// @Failure 500 {object} utils.Response
// @Router /models [get]
func GetModels(c *gin.Context) {
	configs, err := services.ListModels()
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", configs))
}

// CreateModel godoc
// @Summary Register a model config
// @Tags models
// @Accept json
// @Produce json
// @Param request body CreateModelRequest true "Create Model Request"
// @Success 201 {object} utils.Response{data=models.ModelConfig}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /models [post]
func CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	cfg, err := services.CreateModel(&models.ModelConfig{
		Name:       req.Name,
		ModelID:    req.ModelID,
		BaseURL:    req.BaseURL,
		APIKey:     req.APIKey,
		APIType:    models.ModelAPIType(req.APIType),
		APIVersion: req.APIVersion,
		IsDefault:  req.IsDefault,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Model created successfully", cfg))
}

// GetDefaultModel godoc
// @Summary Get the default model config
// @Tags models
// @Produce json
// @Success 200 {object} utils.Response{data=models.ModelConfig}
// @Failure 400 {object} utils.Response
// @Router /models/default [get]
func GetDefaultModel(c *gin.Context) {
	cfg, err := services.GetDefaultModel()
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", cfg))
}

// GetModel godoc
// @Summary Get a model config
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response{data=models.ModelConfig}
// @Failure 404 {object} utils.Response
// @Router /models/{id} [get]
func GetModel(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	cfg, err := services.GetModel(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", cfg))
}

// UpdateModel godoc
// @Summary Update a model config
// @Tags models
// @Accept json
// @Produce json
// @Param id path int true "Model ID"
// @Param request body UpdateModelRequest true "Update Model Request"
// @Success 200 {object} utils.Response{data=models.ModelConfig}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [put]
func UpdateModel(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req UpdateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	cfg, err := services.UpdateModel(id, services.ModelConfigUpdate{
		Name:       req.Name,
		ModelID:    req.ModelID,
		BaseURL:    req.BaseURL,
		APIKey:     req.APIKey,
		APIType:    req.APIType,
		APIVersion: req.APIVersion,
		IsDefault:  req.IsDefault,
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model updated successfully", cfg))
}

// DeleteModel godoc
// @Summary Delete a model config
// @Description The default model cannot be deleted
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /models/{id} [delete]
func DeleteModel(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	if err := services.DeleteModel(id); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model deleted successfully", nil))
}

// SetDefaultModel godoc
// @Summary Make a model config the default
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response{data=models.ModelConfig}
// @Failure 404 {object} utils.Response
// @Router /models/{id}/default [post]
func SetDefaultModel(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	cfg, err := services.SetDefaultModel(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Default model updated", cfg))
}
