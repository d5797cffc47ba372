package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/prompts")
	{
		group.GET("", ListPrompts)
		group.POST("", CreatePrompt)
		group.GET("/:id", GetPrompt)
		group.PUT("/:id", UpdatePrompt)
		group.DELETE("/:id", DeletePrompt)
		group.GET("/:id/versions", ListVersions)
		group.GET("/:id/shots", ListShots)
	}
}
