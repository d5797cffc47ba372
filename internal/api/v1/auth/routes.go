package auth

import (
	"github.com/Sibyl1122/promptGenerator/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, secret string) {
	auth := router.Group("/auth")
	auth.POST("/login", Login)
	auth.POST("/revoke", middleware.AuthMiddleware(secret), Revoke)
}
