package server

import (
	"github.com/gin-gonic/gin"

	"audioscribe/internal/config"
	"audioscribe/internal/domains/transcription"
	"audioscribe/internal/handlers"
	"audioscribe/pkg/Logger"
)

// Dependencies carries everything route handlers need.
type Dependencies struct {
	Service transcription.Service
	Config  *config.Settings
	Logger  *Logger.Logger
}

func NewServerDependencies(
	service transcription.Service,
	cfg *config.Settings,
	logger *Logger.Logger,
) Dependencies {
	return Dependencies{
		Service: service,
		Config:  cfg,
		Logger:  logger,
	}
}

func InitializeRoutes(router *gin.Engine, deps Dependencies) {
	h := handlers.NewTranscriptionHandler(deps.Service, deps.Config.Export, deps.Logger)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health)
		v1.POST("/transcriptions", h.Create)
	}
}
