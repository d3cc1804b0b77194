package service

import (
	"fmt"

	"github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
)

const (
	descriptionLimit = 200
	imageAltText     = "News article image"
	publishedLayout  = "2006-01-02 15:04:05"
)

// FormatArticle renders an article as a header, a publication time context
// line and a section linking to the full story.
func FormatArticle(article domain.Article) []domain.Block {
	section := domain.Block{
		Kind: domain.BlockKindSection,
		Text: fmt.Sprintf("%s... <%s|Continue reading...>", truncate(article.Description, descriptionLimit), article.URL),
	}
	if article.ImageURL != "" {
		section.Accessory = &domain.Image{URL: article.ImageURL, AltText: imageAltText}
	}

	return []domain.Block{
		{Kind: domain.BlockKindHeader, Text: article.Title},
		{Kind: domain.BlockKindContext, Text: "⏱ " + article.PublishedAt.UTC().Format(publishedLayout)},
		section,
	}
}

// truncate keeps the first maxLen code points of s
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
