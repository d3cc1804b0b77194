package slack

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/slack-go/slack"
)

type fakePoster struct {
	channels []string
	options  [][]slack.MsgOption
	err      error
}

func (f *fakePoster) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	f.channels = append(f.channels, channelID)
	f.options = append(f.options, options)
	return channelID, "1700000000.000100", nil
}

func TestSenderSend(t *testing.T) {
	poster := &fakePoster{}
	msg := domain.Outgoing{
		Text:          "Title",
		DisableUnfurl: true,
		Blocks: []articleDomain.Block{
			{Kind: articleDomain.BlockKindHeader, Text: "Title"},
		},
	}

	ts, err := NewSender(poster).Send(context.Background(), "C1", msg)

	assert.Equal(t, nil, err)
	assert.Equal(t, "1700000000.000100", ts)
	assert.Equal(t, []string{"C1"}, poster.channels)

	_, values, err := slack.UnsafeApplyMsgOptions("xoxb-test", "C1", "https://slack.com/api/", poster.options[0]...)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Title", values.Get("text"))
	assert.Equal(t, "false", values.Get("unfurl_links"))
	assert.Equal(t, "false", values.Get("unfurl_media"))
	assert.Equal(t, true, strings.Contains(values.Get("blocks"), `"type":"header"`))
}

func TestSenderSendPlainNotice(t *testing.T) {
	poster := &fakePoster{}

	_, err := NewSender(poster).Send(context.Background(), "C1", domain.Outgoing{Text: "No articles matched your query: go."})

	assert.Equal(t, nil, err)
	_, values, err := slack.UnsafeApplyMsgOptions("xoxb-test", "C1", "https://slack.com/api/", poster.options[0]...)
	assert.Equal(t, nil, err)
	assert.Equal(t, "No articles matched your query: go.", values.Get("text"))
	assert.Equal(t, "", values.Get("blocks"))
	assert.Equal(t, "", values.Get("unfurl_links"))
}

func TestSenderSendError(t *testing.T) {
	poster := &fakePoster{err: errors.New("channel_not_found")}

	ts, err := NewSender(poster).Send(context.Background(), "C1", domain.Outgoing{Text: "x"})

	assert.Equal(t, "", ts)
	assert.Equal(t, "channel_not_found", err.Error())
}
