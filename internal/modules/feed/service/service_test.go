package service

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/repository"
)

func TestGenerateFeed(t *testing.T) {
	repo, err := repository.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	posted := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC)
	messages := []*domain.Message{
		{
			ChannelID:   "C1",
			Timestamp:   "1.1",
			Title:       "Older <story>",
			Link:        "https://example.com/older",
			Text:        "Old & busted",
			PublishedAt: posted.Add(-time.Hour),
			PostedAt:    posted,
		},
		{
			ChannelID: "C1",
			Timestamp: "1.2",
			Title:     "No articles matched your query: go.",
			Text:      "No articles matched your query: go.",
			PostedAt:  posted.Add(time.Minute),
		},
	}
	for _, m := range messages {
		assert.Equal(t, nil, repo.SaveMessage(m))
	}

	feed, err := New(repo).GenerateFeed("C1", "http://localhost:8080")

	assert.Equal(t, nil, err)
	assert.Equal(t, "http://localhost:8080/rss/C1", feed.Link.Href)
	assert.Equal(t, 2, len(feed.Items))
	assert.Equal(t, "C1-1.2", feed.Items[0].Id)
	assert.Equal(t, "http://localhost:8080/rss/C1", feed.Items[0].Link.Href)
	assert.Equal(t, "https://example.com/older", feed.Items[1].Link.Href)
	assert.Equal(t, true, posted.Add(-time.Hour).Equal(feed.Items[1].Created))

	rss, err := feed.ToRss()
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(rss, "Old &amp; busted"))
}

func TestGenerateFeedEmptyChannel(t *testing.T) {
	repo, err := repository.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	feed, err := New(repo).GenerateFeed("C9", "https://bot.example.com")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(feed.Items))
	_, err = feed.ToRss()
	assert.Equal(t, nil, err)
}
