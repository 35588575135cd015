package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sheet-ai/backend/internal/api"
	"sheet-ai/backend/internal/config"
	"sheet-ai/backend/internal/database"
	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/repository"
	"sheet-ai/backend/internal/service"
	"sheet-ai/backend/internal/tool"
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this
		// critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY is not set")
		return 1
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	repo := repository.NewSQLiteRepository(db)

	baseProvider := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAISearchModel)
	provider := llm.WrapWithRetry(baseProvider, llm.RetryConfig{
		MaxAttempts: cfg.OpenAIMaxRetries,
		BaseBackoff: 4 * time.Second,
		MaxBackoff:  10 * time.Second,
	})

	registry := tool.NewCatalogRegistry(baseProvider)

	chatService := service.NewChatService(provider, registry, service.TurnEngineConfig{
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		MaxTokens:   cfg.OpenAIMaxTokens,
	})
	calcService := service.NewCalcService(provider, service.CalcConfig{
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		MaxTokens:   cfg.OpenAIMaxTokens,
	})
	threadService := service.NewThreadService(repo)

	chatHandler := api.NewChatHandler(chatService)
	calcHandler := api.NewCalcHandler(calcService)
	threadHandler := api.NewThreadHandler(threadService)
	router := api.NewRouter(chatHandler, calcHandler, threadHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for the streaming chat endpoint
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
