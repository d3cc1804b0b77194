package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	messageService "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/service"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/config"
)

// Handler answers Telegram bot commands
type Handler struct {
	cfg *config.Config
}

// NewHandler creates a new Telegram command handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/chatid", bot.MatchTypeExact, h.handleChatID)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/rsslink", bot.MatchTypeExact, h.handleRSSLink)
}

// HandleUpdate ignores everything that is not a registered command
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	slog.Debug("Ignored telegram update", "update_id", update.ID)
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   h.StartText(),
	})
}

func (h *Handler) handleChatID(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   fmt.Sprintf("Channel id for the workflow step: %s", h.ChannelID(update.Message.Chat.ID)),
	})
}

func (h *Handler) handleRSSLink(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   fmt.Sprintf("🔗 RSS feed of delivered news:\n%s", h.RSSLink(update.Message.Chat.ID)),
	})
}

// StartText is the reply to /start and /help
func (h *Handler) StartText() string {
	return strings.Join([]string{
		"👋 Welcome to the News Workflow Bot!",
		"",
		"Add this chat to the news workflow step to receive articles here.",
		"",
		"Available commands:",
		"/help - Show this help message",
		"/chatid - Show the channel id to use in the workflow step",
		"/rsslink - Get the RSS feed of news delivered to this chat",
	}, "\n")
}

// ChannelID is the routed channel id for a Telegram chat
func (h *Handler) ChannelID(chatID int64) string {
	return fmt.Sprintf("%s%d", messageService.TelegramPrefix, chatID)
}

// RSSLink is the feed URL for a Telegram chat
func (h *Handler) RSSLink(chatID int64) string {
	return fmt.Sprintf("http://localhost:%s/rss/%s", h.cfg.HTTPPort, h.ChannelID(chatID))
}
