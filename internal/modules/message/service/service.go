package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/repository"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
)

// TelegramPrefix marks channel ids that are delivered through Telegram
const TelegramPrefix = "tg:"

// Sender delivers a message to one chat platform and returns the
// platform's identifier of the posted message.
type Sender interface {
	Send(ctx context.Context, channelID string, msg domain.Outgoing) (string, error)
}

// Service routes outgoing messages to the matching sender and records
// a receipt for every delivered message
type Service struct {
	repo     repository.Repository
	slack    Sender
	telegram Sender
	now      func() time.Time
}

// New creates a new message service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SetSlackSender sets the sender used for Slack channels
func (s *Service) SetSlackSender(sender Sender) {
	s.slack = sender
}

// SetTelegramSender sets the sender used for "tg:" channels
func (s *Service) SetTelegramSender(sender Sender) {
	s.telegram = sender
}

// Post delivers msg to channelID and returns the posted message timestamp
func (s *Service) Post(ctx context.Context, channelID string, msg domain.Outgoing) (string, error) {
	sender, target := s.route(channelID)
	if sender == nil {
		return "", &errors.DeliveryError{Channel: channelID, Err: errors.ErrSenderUnavailable}
	}

	ts, err := sender.Send(ctx, target, msg)
	if err != nil {
		return "", &errors.DeliveryError{Channel: channelID, Err: err}
	}

	receipt := &domain.Message{
		ChannelID: channelID,
		Timestamp: ts,
		Title:     msg.Text,
		Text:      msg.Text,
		PostedAt:  s.now().UTC(),
	}
	if msg.Article != nil {
		receipt.Title = msg.Article.Title
		receipt.Link = msg.Article.URL
		receipt.Text = msg.Article.Description
		receipt.PublishedAt = msg.Article.PublishedAt
	}
	if err := s.repo.SaveMessage(receipt); err != nil {
		slog.Error("Failed to save message receipt", "channel_id", channelID, "ts", ts, "error", err)
	}

	return ts, nil
}

// GetMessages retrieves the most recent receipts of a channel
func (s *Service) GetMessages(channelID string, limit int) ([]*domain.Message, error) {
	return s.repo.GetMessages(channelID, limit)
}

func (s *Service) route(channelID string) (Sender, string) {
	if chatID, ok := strings.CutPrefix(channelID, TelegramPrefix); ok {
		return s.telegram, chatID
	}
	return s.slack, channelID
}
