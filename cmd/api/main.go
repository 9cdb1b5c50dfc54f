package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkparthk/Buddy-AI/config"
	_ "github.com/pkparthk/Buddy-AI/docs" // Swagger docs
	assistantHTTP "github.com/pkparthk/Buddy-AI/internal/assistant/delivery/http"
	"github.com/pkparthk/Buddy-AI/internal/assistant/usecase"
	"github.com/pkparthk/Buddy-AI/internal/httpserver"
	"github.com/pkparthk/Buddy-AI/internal/middleware"
	"github.com/pkparthk/Buddy-AI/pkg/browser"
	"github.com/pkparthk/Buddy-AI/pkg/gemini"
	"github.com/pkparthk/Buddy-AI/pkg/launcher"
	"github.com/pkparthk/Buddy-AI/pkg/log"
	"github.com/pkparthk/Buddy-AI/pkg/newsapi"
	"github.com/pkparthk/Buddy-AI/pkg/openweather"
	"github.com/pkparthk/Buddy-AI/pkg/speech"
	"github.com/pkparthk/Buddy-AI/pkg/sysinfo"
)

// @title       Buddy AI API
// @description Personal assistant command engine: classifies natural-language commands, dispatches them to category handlers, and degrades gracefully when the AI backend is unavailable.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Buddy AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. External clients
	geminiClient := gemini.NewClientWithModel(cfg.Gemini.APIKey, cfg.Gemini.Model)
	weatherClient := openweather.NewClient(cfg.OpenWeather.APIKey)
	newsClient := newsapi.NewClient(cfg.News.APIKey)

	if cfg.OpenWeather.APIKey == "" {
		logger.Warn(ctx, "OpenWeatherMap API key missing, weather lookups will fail")
	}
	if cfg.News.APIKey == "" {
		logger.Warn(ctx, "NewsAPI key missing, news lookups will fail")
	}

	// 4. Host integrations
	systemProvider := sysinfo.NewProvider()
	urlOpener := browser.New()
	appLauncher := launcher.New()

	voice := speech.NewSpeaker(
		logger,
		speech.NewEdgeProvider(speech.EdgeConfig{Voice: cfg.Speech.Voice}),
		cfg.Speech.Enabled,
	)
	if cfg.Speech.Enabled {
		logger.Info(ctx, "Speech output enabled")
	}

	// 5. Assistant domain
	assistantUC := usecase.New(
		logger,
		geminiClient,
		weatherClient,
		newsClient,
		systemProvider,
		urlOpener,
		appLauncher,
		voice,
	)
	assistantHandler := assistantHTTP.New(logger, assistantUC)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
