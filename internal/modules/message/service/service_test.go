package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/repository"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
)

type sent struct {
	channelID string
	msg       domain.Outgoing
}

type fakeSender struct {
	ts   string
	err  error
	sent []sent
}

func (f *fakeSender) Send(_ context.Context, channelID string, msg domain.Outgoing) (string, error) {
	f.sent = append(f.sent, sent{channelID: channelID, msg: msg})
	return f.ts, f.err
}

func newTestService(t *testing.T) (*Service, repository.Repository) {
	t.Helper()
	repo, err := repository.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := New(repo)
	svc.now = func() time.Time { return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC) }
	return svc, repo
}

func TestPostRoutesByChannelPrefix(t *testing.T) {
	svc, _ := newTestService(t)
	slackSender := &fakeSender{ts: "1700000000.000100"}
	telegramSender := &fakeSender{ts: "42"}
	svc.SetSlackSender(slackSender)
	svc.SetTelegramSender(telegramSender)

	ts, err := svc.Post(context.Background(), "C123", domain.Outgoing{Text: "hello"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "1700000000.000100", ts)

	ts, err = svc.Post(context.Background(), "tg:-100987", domain.Outgoing{Text: "hello"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "42", ts)

	assert.Equal(t, 1, len(slackSender.sent))
	assert.Equal(t, "C123", slackSender.sent[0].channelID)
	assert.Equal(t, 1, len(telegramSender.sent))
	assert.Equal(t, "-100987", telegramSender.sent[0].channelID)
}

func TestPostRecordsArticleReceipt(t *testing.T) {
	svc, repo := newTestService(t)
	svc.SetSlackSender(&fakeSender{ts: "111.222"})

	article := &articleDomain.Article{
		Title:       "Launch day",
		Description: "Rocket goes up",
		URL:         "https://example.com/launch",
		PublishedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.Post(context.Background(), "C1", domain.Outgoing{Text: article.Title, Article: article})
	assert.Equal(t, nil, err)

	receipt, err := repo.GetMessage("C1", "111.222")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Launch day", receipt.Title)
	assert.Equal(t, "https://example.com/launch", receipt.Link)
	assert.Equal(t, "Rocket goes up", receipt.Text)
	assert.Equal(t, true, article.PublishedAt.Equal(receipt.PublishedAt))
	assert.Equal(t, true, svc.now().Equal(receipt.PostedAt))
}

func TestPostWrapsSenderErrors(t *testing.T) {
	svc, repo := newTestService(t)
	cause := stderrors.New("channel_not_found")
	svc.SetSlackSender(&fakeSender{err: cause})

	_, err := svc.Post(context.Background(), "C404", domain.Outgoing{Text: "x"})

	var deliveryErr *errors.DeliveryError
	assert.Equal(t, true, stderrors.As(err, &deliveryErr))
	assert.Equal(t, "C404", deliveryErr.Channel)
	assert.Equal(t, true, stderrors.Is(err, cause))

	messages, err := repo.GetMessages("C404", 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(messages))
}

func TestPostWithoutTelegramSender(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetSlackSender(&fakeSender{ts: "1"})

	_, err := svc.Post(context.Background(), "tg:123", domain.Outgoing{Text: "x"})

	assert.Equal(t, true, stderrors.Is(err, errors.ErrSenderUnavailable))
}
