package telegram

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/samber/lo"
)

// mrkdwn links look like <https://example.com|label>
var linkPattern = regexp.MustCompile(`<([^<>|]+)\|([^<>]+)>`)

type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Sender delivers messages to Telegram chats
type Sender struct {
	bot messageSender
}

// NewSender creates a Telegram sender
func NewSender(b messageSender) *Sender {
	return &Sender{bot: b}
}

// Send posts msg to chatID as HTML and returns the Telegram message id
func (s *Sender) Send(ctx context.Context, chatID string, msg domain.Outgoing) (string, error) {
	params := &bot.SendMessageParams{
		ChatID:    ChatID(chatID),
		Text:      RenderHTML(msg),
		ParseMode: models.ParseModeHTML,
	}
	if msg.DisableUnfurl {
		params.LinkPreviewOptions = &models.LinkPreviewOptions{IsDisabled: bot.True()}
	}

	sent, err := s.bot.SendMessage(ctx, params)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sent.ID), nil
}

// ChatID returns a numeric chat id when possible, otherwise the
// @username form Telegram also accepts
func ChatID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

// RenderHTML converts message blocks into Telegram HTML
func RenderHTML(msg domain.Outgoing) string {
	if len(msg.Blocks) == 0 {
		return html.EscapeString(msg.Text)
	}

	lines := lo.FilterMap(msg.Blocks, func(block articleDomain.Block, _ int) (string, bool) {
		switch block.Kind {
		case articleDomain.BlockKindHeader:
			return "<b>" + html.EscapeString(block.Text) + "</b>", true
		case articleDomain.BlockKindContext:
			return "<i>" + html.EscapeString(block.Text) + "</i>", true
		case articleDomain.BlockKindSection:
			return renderLinks(block.Text), true
		default:
			return "", false
		}
	})
	return strings.Join(lines, "\n")
}

func renderLinks(text string) string {
	var sb strings.Builder
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(html.EscapeString(text[last:m[0]]))
		url := text[m[2]:m[3]]
		label := text[m[4]:m[5]]
		sb.WriteString(`<a href="` + html.EscapeString(url) + `">` + html.EscapeString(label) + `</a>`)
		last = m[1]
	}
	sb.WriteString(html.EscapeString(text[last:]))
	return sb.String()
}
