package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"compliance-ai/backend/internal/api"
	"compliance-ai/backend/internal/assistant"
	"compliance-ai/backend/internal/chat"
	"compliance-ai/backend/internal/config"
	"compliance-ai/backend/internal/database"
	"compliance-ai/backend/internal/export"
	"compliance-ai/backend/internal/repository"
	"compliance-ai/backend/internal/service"
)

const (
	warmUpAttempts = 5
	warmUpDelay    = 3 * time.Second
	shutdownGrace  = 10 * time.Second
)

// App is the wired application: storage, services and the HTTP server.
type App struct {
	DB       *sql.DB
	Server   *http.Server
	Settings *service.SettingsService
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go warmUpDefaultPrompt(ctx, app.Settings)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", app.Server.Addr)
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return 1
		}
	}
	return 0
}

// NewApp opens the database and wires every component from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	answerer, err := newAnswerer(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("could not initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)
	settingsService := service.NewSettingsService(repo, answerer)
	chatService := service.NewChatService(chat.NewStore(), answerer, settingsService, export.NewExporter(loc), cfg.HistoryWindow)
	findingService := service.NewFindingService()

	router := api.NewRouter(
		api.NewChatHandler(chatService),
		api.NewSettingsHandler(settingsService),
		api.NewFindingHandler(findingService),
		api.RouterOptions{AllowedOrigins: cfg.AllowedOrigins()},
	)

	port := cfg.AppPort
	if port == 0 {
		port = 8000
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled: answers can take minutes.
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server, Settings: settingsService}, nil
}

func newAnswerer(cfg *config.Config) (assistant.Answerer, error) {
	switch strings.ToLower(cfg.AssistantProvider) {
	case config.ProviderOpenAI:
		slog.Info("Using OpenAI assistant", "model", cfg.OpenAIModel)
		return assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil
	case config.ProviderBackend, "":
		slog.Info("Using document backend assistant", "url", cfg.BackendURL)
		return assistant.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider %q", cfg.AssistantProvider)
	}
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

// warmUpDefaultPrompt fetches the default system prompt so the settings page
// does not wait for the answering service. The server runs regardless of the
// outcome.
func warmUpDefaultPrompt(ctx context.Context, settings *service.SettingsService) {
	slog.Info("Waiting for the answering service to be ready...")
	for attempt := 1; attempt <= warmUpAttempts; attempt++ {
		_, err := settings.DefaultSystemPrompt(ctx)
		if err == nil {
			slog.Info("Answering service is ready.")
			return
		}
		slog.Debug("Answering service not ready yet", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(warmUpDelay):
		}
	}
	slog.Warn("Answering service unreachable, continuing without a cached default prompt")
}
