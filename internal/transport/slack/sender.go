package slack

import (
	"context"

	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/slack-go/slack"
)

type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Sender posts messages to Slack channels
type Sender struct {
	client messagePoster
}

// NewSender creates a Slack sender
func NewSender(client messagePoster) *Sender {
	return &Sender{client: client}
}

// MessageOptions builds the chat.postMessage options for msg
func MessageOptions(msg domain.Outgoing) []slack.MsgOption {
	options := []slack.MsgOption{slack.MsgOptionText(msg.Text, false)}
	if len(msg.Blocks) > 0 {
		options = append(options, slack.MsgOptionBlocks(ToBlockKit(msg.Blocks)...))
	}
	if msg.DisableUnfurl {
		options = append(options, slack.MsgOptionDisableLinkUnfurl(), slack.MsgOptionDisableMediaUnfurl())
	}
	return options
}

// Send posts msg and returns the message timestamp
func (s *Sender) Send(ctx context.Context, channelID string, msg domain.Outgoing) (string, error) {
	_, ts, err := s.client.PostMessageContext(ctx, channelID, MessageOptions(msg)...)
	if err != nil {
		return "", err
	}
	return ts, nil
}
