package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	articleService "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/service"
	messageDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/modules/step/domain"
	"github.com/samber/lo"
)

// Fetcher retrieves news articles
type Fetcher interface {
	FetchArticles(ctx context.Context, query string, maxCount int) ([]articleDomain.Article, error)
}

// Poster posts a message to a channel and returns its timestamp
type Poster interface {
	Post(ctx context.Context, channelID string, msg messageDomain.Outgoing) (string, error)
}

// StepCallbacks is the configure/save/execute contract a host platform
// drives for one workflow step
type StepCallbacks interface {
	Configure(inputs domain.Inputs) domain.Form
	Save(values domain.SubmittedValues) domain.Configuration
	Execute(ctx context.Context, inputs domain.Inputs, poster Poster) (domain.ExecutionOutputs, error)
}

var _ StepCallbacks = (*Service)(nil)

var numArticleOptions = []domain.Option{
	{Text: "1", Value: "1"},
	{Text: "3", Value: "3"},
	{Text: "5", Value: "5"},
}

// Service implements the news workflow step
type Service struct {
	fetcher Fetcher
}

// New creates a new workflow step service
func New(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Configure builds the settings form, pre-filled from the stored inputs
func (s *Service) Configure(inputs domain.Inputs) domain.Form {
	slog.Info("Editing workflow step")

	numArticles := domain.Field{
		BlockID: domain.InputNumArticles,
		Kind:    domain.FieldKindRadioButtons,
		Label:   "Max number of articles",
		Options: numArticleOptions,
	}
	channels := domain.Field{
		BlockID:     domain.InputChannelIDs,
		Kind:        domain.FieldKindMultiChannelsSelect,
		Label:       "Channel to post",
		Placeholder: "Multiple channels can be chosen.",
	}
	query := domain.Field{
		BlockID:     domain.InputQuery,
		Kind:        domain.FieldKindPlainTextInput,
		Label:       "Query (Leave blank for all news articles)",
		Placeholder: "technology, sports, finance (Separate multiple terms by a comma)",
		Optional:    true,
	}

	if value, ok := inputs.Lookup(domain.InputNumArticles); ok {
		if option, found := lo.Find(numArticleOptions, func(o domain.Option) bool {
			return o.Value == value
		}); found {
			numArticles.InitialOption = &option
		}
	}
	if value, ok := inputs.Lookup(domain.InputChannelIDs); ok && value != "" {
		channels.InitialChannels = strings.Split(value, ",")
	}
	if value, ok := inputs.Lookup(domain.InputQuery); ok {
		query.InitialValue = value
	}

	return domain.Form{numArticles, channels, query}
}

// Save turns submitted form values into stored inputs and declares one
// output per selected channel
func (s *Service) Save(values domain.SubmittedValues) domain.Configuration {
	slog.Info("Saving workflow step")

	channels := values.List(domain.InputChannelIDs)
	query := values.String(domain.InputQuery)
	numArticles := values.String(domain.InputNumArticles)

	return domain.Configuration{
		Inputs: domain.Inputs{
			domain.InputNumArticles: {Value: lo.FromPtr(numArticles)},
			domain.InputChannelIDs:  {Value: strings.Join(channels, ",")},
			domain.InputQuery:       {Value: lo.FromPtr(query)},
		},
		Outputs: lo.Map(channels, func(channelID string, _ int) domain.Output {
			return domain.Output{Name: channelID, Type: "text", Label: domain.OutputLabel}
		}),
	}
}

// Execute fetches articles and posts them to every configured channel.
// It stops at the first failure and returns a *domain.Failure; outputs
// recorded before that point are dropped.
func (s *Service) Execute(ctx context.Context, inputs domain.Inputs, poster Poster) (domain.ExecutionOutputs, error) {
	slog.Info("Executing workflow step")

	cfg, err := domain.ParseConfiguration(inputs)
	if err != nil {
		return nil, domain.FetchFailed(err)
	}

	articles, err := s.fetcher.FetchArticles(ctx, cfg.Query, cfg.NumArticles)
	if err != nil {
		return nil, domain.FetchFailed(err)
	}

	outputs := domain.ExecutionOutputs{}

	if len(articles) == 0 {
		notice := messageDomain.Outgoing{Text: fmt.Sprintf("No articles matched your query: %s.", cfg.Query)}
		for _, channelID := range cfg.ChannelIDs {
			ts, err := poster.Post(ctx, channelID, notice)
			if err != nil {
				return nil, s.notificationFailed(channelID, outputs, err)
			}
			outputs[channelID] = ts
		}
		return outputs, nil
	}

	for i := range articles {
		article := &articles[i]
		msg := messageDomain.Outgoing{
			Blocks:        articleService.FormatArticle(*article),
			Text:          article.Title,
			DisableUnfurl: true,
			Article:       article,
		}
		for _, channelID := range cfg.ChannelIDs {
			ts, err := poster.Post(ctx, channelID, msg)
			if err != nil {
				return nil, s.notificationFailed(channelID, outputs, err)
			}
			outputs[channelID] = ts
		}
	}

	return outputs, nil
}

func (s *Service) notificationFailed(channelID string, partial domain.ExecutionOutputs, err error) error {
	slog.Error("Failed to post news message", "channel_id", channelID, "dropped_outputs", len(partial), "error", err)
	return domain.NotificationFailed(err)
}
