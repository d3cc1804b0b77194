package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	feedService "github.com/reshetovitsme/news-workflow-bot/internal/modules/feed/service"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server handles HTTP requests for RSS feeds
type Server struct {
	cfg         *config.Config
	feedService *feedService.Service
	logger      *slog.Logger
	server      *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, feedService *feedService.Service) *Server {
	return &Server{
		cfg:         cfg,
		feedService: feedService,
		logger:      slog.Default(),
		server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// RSS feed endpoint
	mux.HandleFunc("GET /rss/{channelID}", s.handleRSSFeed)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Root endpoint with instructions
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	return sloghttp.New(s.logger)(handler)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("RSS server starting", "addr", s.server.Addr)

	s.server.Handler = s.Handler()

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("channelID")
	if channelID == "" {
		http.Error(w, "Channel ID is required", http.StatusBadRequest)
		return
	}

	// Get base URL from request
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	feed, err := s.feedService.GenerateFeed(channelID, baseURL)
	if err != nil {
		s.logger.Error("Error generating feed", "channel_id", channelID, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	// Generate RSS XML
	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>News Workflow Bot</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>News Workflow Bot</h1>
    <div class="info">
        <p>This service provides RSS feeds of the news articles the workflow step delivered.</p>
        <p>To access a feed, use: <code>/rss/{channelID}</code></p>
        <p>Example: <code>/rss/C0123456789</code> or <code>/rss/tg:-100123456</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
