package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// App
	AppEnv   string // development | production | staging
	HTTPAddr string // e.g. :8080
	LogLevel string // debug | info | warn | error

	// Instagram / Meta
	VerifyToken  string // shared secret for the webhook subscription handshake
	AccessToken  string // page access token for the messaging API
	AppSecret    string // optional: verifies X-Hub-Signature-256 when set
	GraphBaseURL string // Graph API host, overridable for tests/staging

	// Responder
	TriggerKeyword string // comment text trigger, matched case-insensitively
	ReplyMessage   string // fixed DM body sent per matched comment
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		VerifyToken:  getEnv("IG_VERIFY_TOKEN", ""),
		AccessToken:  getEnv("IG_ACCESS_TOKEN", ""),
		AppSecret:    getEnv("IG_APP_SECRET", ""),
		GraphBaseURL: getEnv("GRAPH_BASE_URL", "https://graph.facebook.com"),

		TriggerKeyword: getEnv("TRIGGER_KEYWORD", "roadmap"),
		ReplyMessage: getEnv("REPLY_MESSAGE",
			"Thanks for asking about the roadmap! Here it is: https://example.com/roadmap"),
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.TriggerKeyword = strings.TrimSpace(cfg.TriggerKeyword)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string

	if c.HTTPAddr == "" {
		missing = append(missing, "HTTP_ADDR")
	}
	if c.TriggerKeyword == "" {
		missing = append(missing, "TRIGGER_KEYWORD")
	}
	if c.ReplyMessage == "" {
		missing = append(missing, "REPLY_MESSAGE")
	}

	if c.IsProd() {
		if c.VerifyToken == "" {
			missing = append(missing, "IG_VERIFY_TOKEN")
		}
		if c.AppSecret == "" {
			missing = append(missing, "IG_APP_SECRET")
		}
		// IG_ACCESS_TOKEN may be empty here; POST handling answers
		// 500 until an operator provides it.
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "production"
}

// --- helpers ---

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
