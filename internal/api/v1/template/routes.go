package template

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/templates")
	{
		group.GET("", ListTemplates)
		group.POST("", CreateTemplate)
		group.GET("/:id", GetTemplate)
		group.PUT("/:id", UpdateTemplate)
		group.DELETE("/:id", DeleteTemplate)
		group.POST("/:id/render", RenderTemplate)
	}
}
