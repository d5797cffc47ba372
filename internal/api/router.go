package api

import (
	"time"

	"github.com/Sibyl1122/promptGenerator/config"
	_ "github.com/Sibyl1122/promptGenerator/docs"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/ai_assistant"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/ai_model"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/auth"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/prompt"
	"github.com/Sibyl1122/promptGenerator/internal/api/v1/template"
	"github.com/Sibyl1122/promptGenerator/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires middleware and every route group. Database and cache
// connections must already be open.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/api")
	{
		auth.RegisterRoutes(apiGroup, cfg.JWTSecret)

		authorized := apiGroup.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			prompt.RegisterRoutes(authorized)
			template.RegisterRoutes(authorized)
			ai_model.RegisterRoutes(authorized)
			ai_assistant.RegisterRoutes(authorized)
		}
	}

	return router
}
