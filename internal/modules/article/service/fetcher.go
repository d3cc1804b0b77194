package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	everythingPath   = "/v2/everything"
	topHeadlinesPath = "/v2/top-headlines"
	sortByPublished  = "publishedAt"
)

// queryReplacer turns comma separated terms into NewsAPI boolean OR syntax
var queryReplacer = strings.NewReplacer(",", " OR ", "、", " OR ")

// Config configures a Fetcher
type Config struct {
	APIKey     string
	BaseURL    string
	Language   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Fetcher retrieves articles from NewsAPI
type Fetcher struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewFetcher creates a NewsAPI fetcher
func NewFetcher(cfg Config) *Fetcher {
	f := &Fetcher{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		language:   cfg.Language,
		httpClient: cfg.HTTPClient,
	}
	if f.baseURL == "" {
		f.baseURL = "https://newsapi.org"
	}
	if f.language == "" {
		f.language = "en"
	}
	if f.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		f.httpClient = &http.Client{Timeout: timeout}
	}
	return f
}

type newsResponse struct {
	Status   string              `json:"status"`
	Code     string              `json:"code"`
	Message  string              `json:"message"`
	Articles []domain.RawArticle `json:"articles"`
}

// BuildQuery rewrites commas and full-width commas into " OR ".
func BuildQuery(query string) string {
	return queryReplacer.Replace(query)
}

// FetchArticles searches for articles matching query, or fetches top headlines
// when query is empty.
func (f *Fetcher) FetchArticles(ctx context.Context, query string, maxCount int) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("apiKey", f.apiKey)
	params.Set("language", f.language)
	params.Set("pageSize", strconv.Itoa(maxCount))
	params.Set("sortBy", sortByPublished)

	endpoint := f.baseURL + topHeadlinesPath
	if query != "" {
		endpoint = f.baseURL + everythingPath
		params.Set("q", BuildQuery(query))
	}

	slog.Info("Fetching articles from NewsAPI", "url", endpoint, "query", params.Get("q"), "page_size", maxCount)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &errors.FetchError{URL: endpoint, Err: err}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &errors.FetchError{URL: endpoint, Err: scrubAPIKey(err, f.apiKey)}
	}
	defer resp.Body.Close()

	var body newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &errors.FetchError{
			URL: endpoint,
			Err: oops.With("status_code", resp.StatusCode).Wrapf(err, "decode response"),
		}
	}

	if body.Status == "error" || resp.StatusCode >= http.StatusBadRequest {
		return nil, &errors.FetchError{
			URL: endpoint,
			Err: fmt.Errorf("status %d: %s (%s)", resp.StatusCode, body.Message, body.Code),
		}
	}

	articles := make([]domain.Article, 0, len(body.Articles))
	for _, raw := range body.Articles {
		article, err := domain.NewArticle(raw)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// scrubAPIKey keeps the key out of transport errors, which embed the request URL.
func scrubAPIKey(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return oops.Errorf("%s", strings.ReplaceAll(err.Error(), apiKey, "REDACTED"))
}
