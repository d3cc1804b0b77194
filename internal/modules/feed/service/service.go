package service

import (
	"fmt"
	"html"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	messageRepo "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const feedSize = 50

// Service builds RSS feeds of the articles delivered to a channel
type Service struct {
	messageRepo messageRepo.Repository
}

// New creates a new feed service
func New(messageRepo messageRepo.Repository) *Service {
	return &Service{
		messageRepo: messageRepo,
	}
}

// GenerateFeed generates an RSS feed of the messages posted to a channel
func (s *Service) GenerateFeed(channelID string, baseURL string) (*feeds.Feed, error) {
	messages, err := s.messageRepo.GetMessages(channelID, feedSize)
	if err != nil {
		return nil, oops.With("channel_id", channelID, "context", "failed to get messages").Wrap(err)
	}

	feedURL := fmt.Sprintf("%s/rss/%s", baseURL, channelID)
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("News delivered to %s", channelID),
		Link:        &feeds.Link{Href: feedURL},
		Description: fmt.Sprintf("Articles posted by the news workflow step to channel %s", channelID),
	}

	if len(messages) > 0 {
		feed.Updated = messages[0].PostedAt
		feed.Created = messages[len(messages)-1].PostedAt
	}

	feed.Items = lo.Map(messages, func(msg *domain.Message, _ int) *feeds.Item {
		return messageToFeedItem(msg, feedURL)
	})
	return feed, nil
}

// messageToFeedItem links notices without an article back to the feed itself
func messageToFeedItem(msg *domain.Message, feedURL string) *feeds.Item {
	description := msg.Text
	if description == "" {
		description = "No description"
	}

	created := msg.PublishedAt
	if created.IsZero() {
		created = msg.PostedAt
	}

	link := msg.Link
	if link == "" {
		link = feedURL
	}

	return &feeds.Item{
		Title:       msg.Title,
		Link:        &feeds.Link{Href: link},
		Description: description,
		Content:     fmt.Sprintf("<p>%s</p>", html.EscapeString(description)),
		Created:     created,
		Updated:     msg.PostedAt,
		Id:          fmt.Sprintf("%s-%s", msg.ChannelID, msg.Timestamp),
	}
}
