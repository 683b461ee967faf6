package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"ig-autoreply/internal/processor"
	"ig-autoreply/internal/types"
)

type WebhookHandler struct {
	verifyToken string
	accessToken string
	appSecret   string

	commentProc *processor.CommentProcessor
}

func NewWebhookHandler(
	verifyToken, accessToken, appSecret string,
	commentProc *processor.CommentProcessor,
) *WebhookHandler {
	return &WebhookHandler{
		verifyToken: verifyToken,
		accessToken: accessToken,
		appSecret:   appSecret,
		commentProc: commentProc,
	}
}

// HandleVerify answers the Graph subscription handshake. An unset verify
// token fails closed: no request token can match it.
func (h *WebhookHandler) HandleVerify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode == "subscribe" && h.verifyToken != "" && token == h.verifyToken {
		log.Info().Msg("webhook subscription verified")
		return c.String(http.StatusOK, challenge)
	}

	log.Warn().Str("mode", mode).Msg("webhook verification rejected")
	return c.String(http.StatusForbidden, "Forbidden")
}

// HandleNotification processes a comment notification batch. The upstream
// notifier redelivers on any non-2xx, so after the batch is recognized every
// outcome maps to 200; internal faults only change the body, for log
// correlation. The sole non-2xx paths are a missing access token (deployment
// defect, wants operator attention) and a foreign object type.
func (h *WebhookHandler) HandleNotification(c echo.Context) error {
	if h.accessToken == "" {
		log.Error().Msg("IG access token not configured, rejecting batch")
		return c.String(http.StatusInternalServerError, "Server Config Error")
	}

	bodyBytes, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Error().Err(err).Msg("read webhook body")
		return c.String(http.StatusOK, "Internal Server Error Handled")
	}

	if h.appSecret != "" {
		if sig := c.Request().Header.Get("X-Hub-Signature-256"); !verifySignature(h.appSecret, bodyBytes, sig) {
			log.Warn().Msg("webhook signature mismatch")
			return c.NoContent(http.StatusForbidden)
		}
	}

	var batch types.NotificationBatch
	if err := json.Unmarshal(bodyBytes, &batch); err != nil {
		log.Error().Err(err).Msg("parse webhook payload")
		return c.String(http.StatusOK, "Internal Server Error Handled")
	}

	if batch.Object != "instagram" {
		log.Warn().Str("object", batch.Object).Msg("batch for unknown object type")
		return c.String(http.StatusNotFound, "Not Found")
	}

	body := "EVENT_RECEIVED"
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("fault while processing batch")
				body = "Internal Server Error Handled"
			}
		}()
		n := h.commentProc.Process(c.Request().Context(), batch)
		log.Info().Int("entries", len(batch.Entry)).Int("dispatched", n).Msg("batch processed")
	}()
	return c.String(http.StatusOK, body)
}

// verifySignature checks the X-Hub-Signature-256 header ("sha256=hexdigest")
// against the HMAC of the raw body.
func verifySignature(appSecret string, body []byte, sigHeader string) bool {
	if len(sigHeader) < 7 || sigHeader[:7] != "sha256=" {
		return false
	}
	sigProvided := sigHeader[7:]

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(sigProvided), []byte(expected))
}
