package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"local-llm-chat/api/handlers"
	"local-llm-chat/api/middleware"
	"local-llm-chat/backend"
	"local-llm-chat/config"
	_ "local-llm-chat/docs"
	"local-llm-chat/repositories"
	"local-llm-chat/services"
)

// New wires the HTTP surface. shutdown is invoked by POST /api/shutdown to
// stop the server gracefully.
func New(shutdown func()) *gin.Engine {
	cfg := config.GetConfig()
	defaults := backend.Config{
		Endpoint:    cfg.Backend.Endpoint,
		Model:       cfg.Backend.Model,
		Temperature: cfg.Backend.Temperature,
		Timeout:     time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check: probe the default backend briefly, report degraded when
	// it is down but keep the process itself healthy.
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		info := backend.Status(ctx, defaults)
		if !info.Running {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "backend": "down", "endpoint": info.Endpoint})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The chat UI keeps its historical paths, so no version prefix here.
	api := r.Group("/api")
	{
		chatSvc := services.NewChatService(defaults)
		api.POST("/chat", handlers.ChatHandler(chatSvc))

		backendSvc := services.NewBackendService(defaults)
		api.GET("/models", handlers.ModelsHandler(backendSvc))
		api.GET("/llm_status", handlers.StatusHandler(backendSvc))

		repo := repositories.NewConversationRepository(cfg.Storage.ConversationsDir)
		convSvc := services.NewConversationService(repo)
		api.POST("/save_conversation", handlers.SaveConversationHandler(convSvc))
		api.GET("/conversations", handlers.ListConversationsHandler(convSvc))
		api.GET("/conversations/:filename", handlers.GetConversationHandler(convSvc))

		api.POST("/shutdown", handlers.ShutdownHandler(shutdown))
	}

	return r
}
