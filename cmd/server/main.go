package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ig-autoreply/internal/config"
	httpserver "ig-autoreply/internal/http"
	"ig-autoreply/internal/ig"
	"ig-autoreply/internal/processor"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	client := ig.NewClient(cfg.GraphBaseURL, cfg.AccessToken)
	dispatcher := ig.NewReplyDispatcher(client, cfg.ReplyMessage)
	commentProc := processor.NewCommentProcessor(dispatcher, cfg.TriggerKeyword)
	webhook := httpserver.NewWebhookHandler(cfg.VerifyToken, cfg.AccessToken, cfg.AppSecret, commentProc)

	e := echo.New()
	e.HideBanner = true
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/webhook", webhook.HandleVerify)
	e.POST("/webhook", webhook.HandleNotification)

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("HTTP listening")
	if err := e.StartServer(s); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}
