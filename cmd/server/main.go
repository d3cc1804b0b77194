package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	"github.com/reshetovitsme/news-workflow-bot/internal/di"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/config"
	httpServer "github.com/reshetovitsme/news-workflow-bot/internal/transport/http"
	slackHandler "github.com/reshetovitsme/news-workflow-bot/internal/transport/slack"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	level := new(slog.LevelVar)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Verbose() {
		level.Set(slog.LevelDebug)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Get services from DI container
	handler := do.MustInvoke[*slackHandler.Handler](injector)
	httpServer := do.MustInvoke[*httpServer.Server](injector)

	// Start Telegram polling for bot commands
	if cfg.TelegramBotToken != "" {
		b := do.MustInvoke[*bot.Bot](injector)
		go b.Start(ctx)
	}

	// Start HTTP server
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	// Start Slack Socket Mode
	go func() {
		if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Slack Socket Mode stopped", "error", err)
			cancel()
		}
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "app_env", cfg.AppEnv)
	slog.Info("Press Ctrl+C to stop")

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := di.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}
