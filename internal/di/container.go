package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	articleService "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/service"
	feedService "github.com/reshetovitsme/news-workflow-bot/internal/modules/feed/service"
	messageRepo "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/repository"
	messageService "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/service"
	stepService "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/service"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/config"
	httpServer "github.com/reshetovitsme/news-workflow-bot/internal/transport/http"
	slackHandler "github.com/reshetovitsme/news-workflow-bot/internal/transport/slack"
	telegramHandler "github.com/reshetovitsme/news-workflow-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Message Repository
	do.Provide(injector, func(i do.Injector) (messageRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := messageRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize message repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Slack Web API client
	do.Provide(injector, func(i do.Injector) (*slack.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return slack.New(
			cfg.SlackBotToken,
			slack.OptionAppLevelToken(cfg.SlackAppToken),
			slack.OptionDebug(cfg.Verbose()),
		), nil
	})

	// Register Socket Mode client
	do.Provide(injector, func(i do.Injector) (*socketmode.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		api := do.MustInvoke[*slack.Client](i)
		return socketmode.New(api, socketmode.OptionDebug(cfg.Verbose())), nil
	})

	// Register Telegram Bot, only resolved when a token is configured
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := telegramHandler.NewHandler(cfg)

		b, err := bot.New(cfg.TelegramBotToken, bot.WithDefaultHandler(handler.HandleUpdate))
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		handler.RegisterCommands(b)
		return b, nil
	})

	// Register Message Service with one sender per platform
	do.Provide(injector, func(i do.Injector) (*messageService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[messageRepo.Repository](i)
		api := do.MustInvoke[*slack.Client](i)

		service := messageService.New(repo)
		service.SetSlackSender(slackHandler.NewSender(api))

		if cfg.TelegramBotToken != "" {
			b, err := do.Invoke[*bot.Bot](i)
			if err != nil {
				return nil, err
			}
			service.SetTelegramSender(telegramHandler.NewSender(b))
		}
		return service, nil
	})

	// Register News Fetcher
	do.Provide(injector, func(i do.Injector) (*articleService.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return articleService.NewFetcher(articleService.Config{
			APIKey:   cfg.NewsAPIKey,
			BaseURL:  cfg.NewsAPIURL,
			Language: cfg.NewsLanguage,
			Timeout:  cfg.RequestTimeout(),
		}), nil
	})

	// Register Workflow Step Service
	do.Provide(injector, func(i do.Injector) (*stepService.Service, error) {
		fetcher := do.MustInvoke[*articleService.Fetcher](i)
		return stepService.New(fetcher), nil
	})

	// Register Slack Handler
	do.Provide(injector, func(i do.Injector) (*slackHandler.Handler, error) {
		api := do.MustInvoke[*slack.Client](i)
		socket := do.MustInvoke[*socketmode.Client](i)
		step := do.MustInvoke[*stepService.Service](i)
		poster := do.MustInvoke[*messageService.Service](i)
		return slackHandler.New(api, socket, step, poster), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[messageRepo.Repository](i)
		return feedService.New(repo), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feedService := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, feedService)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	// Stop the HTTP server if it was started
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}

	return nil
}
