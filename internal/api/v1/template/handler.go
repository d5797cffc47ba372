package template

import (
	"net/http"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/common"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListTemplates godoc
// @Summary List templates
// @Tags templates
// @Produce json
// @Success 200 {object} utils.Response{data=[]TemplateResponse}
// @Failure 500 {object} utils.Response
// @Router /templates [get]
func ListTemplates(c *gin.Context) {
	templates, err := services.ListTemplates()
	if err != nil {
		common.RespondError(c, err)
		return
	}

	out := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, newTemplateResponse(&templates[i]))
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", out))
}

// CreateTemplate godoc
// @Summary Create a template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Create Template Request"
// @Success 201 {object} utils.Response{data=TemplateResponse}
// @Failure 400 {object} utils.Response
// @Router /templates [post]
func CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tpl, err := services.CreateTemplate(req.Name, req.Content)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Template created successfully", newTemplateResponse(tpl)))
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response{data=TemplateResponse}
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [get]
func GetTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	tpl, err := services.GetTemplate(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", newTemplateResponse(tpl)))
}

// UpdateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body UpdateTemplateRequest true "Update Template Request"
// @Success 200 {object} utils.Response{data=TemplateResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [put]
func UpdateTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tpl, err := services.UpdateTemplate(id, req.Name, req.Content)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template updated successfully", newTemplateResponse(tpl)))
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	if err := services.DeleteTemplate(id); err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template deleted successfully", nil))
}

// RenderTemplate godoc
// @Summary Render a template
// @Description Substitute {{ name }} placeholders with the given variables
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body RenderTemplateRequest true "Variables"
// @Success 200 {object} utils.Response{data=RenderTemplateResponse}
// @Failure 404 {object} utils.Response
// @Router /templates/{id}/render [post]
func RenderTemplate(c *gin.Context) {
	id, ok := common.ParseID(c)
	if !ok {
		return
	}

	var req RenderTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tpl, err := services.GetTemplate(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", RenderTemplateResponse{
		Content: services.RenderTemplate(tpl.Content, req.Variables),
	}))
}
