package domain

import (
	"strings"
	"time"

	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// publishedAtLayout is the naive part of a NewsAPI timestamp once the UTC
// designator has been removed. time.Parse accepts trailing fractional seconds.
const publishedAtLayout = "2006-01-02T15:04:05"

// Source identifies a news publisher
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article represents one news item returned by the provider
type Article struct {
	Source      Source    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Content     string    `json:"content"`
}

// RawSource is the provider's JSON shape of a source. A null id decodes to "".
type RawSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// RawArticle is the provider's JSON shape of one article
type RawArticle struct {
	Source      RawSource `json:"source"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	URLToImage  *string   `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     *string   `json:"content"`
}

// NewArticle builds an Article from a raw provider record, normalizing the
// publication time to UTC.
func NewArticle(raw RawArticle) (Article, error) {
	publishedAt, err := ParsePublishedAt(raw.PublishedAt)
	if err != nil {
		return Article{}, err
	}

	return Article{
		Source: Source{
			ID:   deref(raw.Source.ID),
			Name: raw.Source.Name,
		},
		Author:      deref(raw.Author),
		Title:       raw.Title,
		Description: deref(raw.Description),
		URL:         raw.URL,
		ImageURL:    deref(raw.URLToImage),
		PublishedAt: publishedAt,
		Content:     deref(raw.Content),
	}, nil
}

// ParsePublishedAt parses an ISO-8601 timestamp ending in "Z" as a UTC instant.
func ParsePublishedAt(value string) (time.Time, error) {
	naive, ok := strings.CutSuffix(value, "Z")
	if !ok {
		return time.Time{}, &errors.ParseError{
			Value: value,
			Err:   oops.Errorf("missing UTC designator"),
		}
	}

	t, err := time.ParseInLocation(publishedAtLayout, naive, time.UTC)
	if err != nil {
		return time.Time{}, &errors.ParseError{Value: value, Err: err}
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
