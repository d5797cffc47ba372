package ai_assistant

import (
	"net/http"
	"strconv"

	"github.com/Sibyl1122/promptGenerator/internal/api/v1/common"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
	"github.com/Sibyl1122/promptGenerator/internal/utils"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamGeneratePrompt godoc
// @Summary Generate a prompt as a server-sent event stream
// @Description Unnamed events carry fragments in order. A "saved" event carries the id of the stored prompt, "done" ends the stream and a named "error" event reports a failure before the connection closes. Invalid parameters are answered with plain JSON before any event.
// @Tags ai_assistant
// @Produce text/event-stream
// @Param user_description query string true "What the prompt should do"
// @Param language query string false "chinese or english" default(chinese)
// @Param temperature query number false "Sampling temperature in [0,1]" default(0.7)
// @Param template_id query int false "Template used as the output format"
// @Param save_prompt query bool false "Store the result as a prompt" default(true)
// @Param prompt_name query string false "Name of the stored prompt" default(Generated Prompt)
// @Success 200 {string} string "event stream"
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /generate-prompt/stream/direct [get]
func StreamGeneratePrompt(c *gin.Context) {
	var q StreamPromptQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}

	lang, err := models.ParseLanguage(q.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	if q.TemplateID != nil {
		if _, err := services.GetTemplate(*q.TemplateID); err != nil {
			common.RespondError(c, err)
			return
		}
	}
	if _, err := services.GetDefaultModel(); err != nil {
		common.RespondError(c, err)
		return
	}

	save := true
	if q.SavePrompt != nil {
		save = *q.SavePrompt
	}

	log := logger.Named("generation").With(zap.String("request_id", c.GetString("RequestID")))
	startEventStream(c)

	_, saved, err := services.StreamGeneratePrompt(c.Request.Context(), services.GenerateInput{
		Description: q.UserDescription,
		TemplateID:  q.TemplateID,
		Temperature: q.Temperature,
		Language:    lang,
		SavePrompt:  save,
		PromptName:  q.PromptName,
	}, func(fragment string) error {
		return writeEvent(c, "", fragment)
	})
	if err != nil {
		if c.Request.Context().Err() != nil {
			log.Info("Client closed the generation stream")
			return
		}
		log.Warn("Generation stream failed", zap.Error(err))
		_ = writeEvent(c, eventError, err.Error())
		return
	}

	if saved != nil {
		if err := writeEvent(c, eventSaved, strconv.FormatUint(uint64(saved.ID), 10)); err != nil {
			return
		}
	}
	_ = writeEvent(c, eventDone, "")
	log.Info("Generation stream completed")
}
