package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	SlackBotToken      string `koanf:"slack_bot_token"`
	SlackAppToken      string `koanf:"slack_app_token"`
	NewsAPIKey         string `koanf:"news_api_key"`
	NewsAPIURL         string `koanf:"news_api_url"`
	NewsLanguage       string `koanf:"news_language"`
	NewsRequestTimeout int    `koanf:"news_request_timeout"`
	TelegramBotToken   string `koanf:"telegram_bot_token"`
	StoragePath        string `koanf:"storage_path"`
	HTTPPort           string `koanf:"http_port"`
	AppEnv             AppEnv `koanf:"app_env"`
}

// RequestTimeout is the HTTP timeout applied to news provider calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.NewsRequestTimeout) * time.Second
}

// Verbose reports whether debug logging should be enabled.
func (c *Config) Verbose() bool {
	return c.AppEnv == AppEnvLocal || c.AppEnv == AppEnvDevelopment
}

func Load() (*Config, error) {
	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"news_api_url":         "https://newsapi.org",
		"news_language":        "en",
		"news_request_timeout": 30,
		"storage_path":         "./data",
		"http_port":            "8080",
		"app_env":              "production",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if cfg.NewsRequestTimeout <= 0 {
		cfg.NewsRequestTimeout = 30
	}

	switch {
	case cfg.SlackBotToken == "":
		return nil, errors.ErrMissingBotToken
	case cfg.SlackAppToken == "":
		return nil, errors.ErrMissingAppToken
	case cfg.NewsAPIKey == "":
		return nil, errors.ErrMissingNewsAPIKey
	}

	return &cfg, nil
}
