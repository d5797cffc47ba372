package ai_model

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/models")
	{
		group.GET("", GetModels)
		group.POST("", CreateModel)
		group.GET("/default", GetDefaultModel)
		group.GET("/:id", GetModel)
		group.PUT("/:id", UpdateModel)
		group.DELETE("/:id", DeleteModel)
		group.POST("/:id/default", SetDefaultModel)
	}
}
