package domain

import (
	"time"

	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
)

// Message is the receipt of one message posted to a channel
type Message struct {
	ChannelID   string    `json:"channel_id"`
	Timestamp   string    `json:"ts"`
	Title       string    `json:"title"`
	Link        string    `json:"link,omitempty"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at,omitzero"`
	PostedAt    time.Time `json:"posted_at"`
}

// Outgoing is a message to be delivered to a channel. Text is the fallback
// plain text shown where Blocks cannot be rendered.
type Outgoing struct {
	Blocks        []articleDomain.Block
	Text          string
	DisableUnfurl bool
	Article       *articleDomain.Article
}
