package ai_assistant

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/execute", ExecutePrompt)
	router.POST("/generate-prompt", GeneratePrompt)
	router.GET("/generate-prompt/stream/direct", StreamGeneratePrompt)
}
