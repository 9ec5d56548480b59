package app

import (
	"fmt"

	"audioscribe/internal/batch"
	"audioscribe/internal/config"
	"audioscribe/internal/domains/transcription"
	"audioscribe/internal/server"
	"audioscribe/internal/sorter"
	"audioscribe/internal/transcribe"
	"audioscribe/pkg/Logger"
)

// App represents the application with all its dependencies
type App struct {
	Config      *config.Settings
	Logger      *Logger.Logger
	Backend     transcribe.Backend
	Service     transcription.Service
	Coordinator *batch.Coordinator
	Sorter      *sorter.Sorter
	ServerDeps  server.Dependencies
}

// NewApp creates a new application instance with all dependencies properly wired
func NewApp(cfg *config.Settings, logger *Logger.Logger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	// 1. Pick the transcription backend
	backend, err := a.setupBackend()
	if err != nil {
		return err
	}
	a.Backend = backend

	// 2. Services on top of it
	a.Service = transcription.New(backend, a.Logger)
	a.Coordinator = batch.New(a.Service, a.Logger)
	a.Sorter = sorter.New(nil, a.Logger)

	// 3. Server deps
	a.ServerDeps = server.NewServerDependencies(a.Service, a.Config, a.Logger)

	return nil
}

// setupBackend configures the transcription provider selected in config.
func (a *App) setupBackend() (transcribe.Backend, error) {
	switch a.Config.Transcriber.Backend {
	case "", "gemini":
		return transcribe.NewGemini(a.Config.Gemini, a.Config.Transcriber.Diarization, a.Logger)
	case "openai":
		return transcribe.NewOpenAI(a.Config.OpenAI, a.Logger)
	default:
		return nil, fmt.Errorf("unknown transcriber backend: %q", a.Config.Transcriber.Backend)
	}
}
