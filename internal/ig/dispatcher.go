package ig

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ReplyDispatcher sends the fixed private reply for a matched comment.
// Dispatch is best-effort: failures are logged and never propagated, so a
// rejected DM cannot disturb the acknowledgment already owed upstream.
type ReplyDispatcher struct {
	client  *Client
	message string
}

func NewReplyDispatcher(client *Client, message string) *ReplyDispatcher {
	return &ReplyDispatcher{client: client, message: message}
}

func (d *ReplyDispatcher) Dispatch(ctx context.Context, commentID string) {
	err := d.client.SendPrivateReply(ctx, commentID, d.message)
	if err == nil {
		log.Info().Str("comment_id", commentID).Msg("private reply sent")
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		log.Error().
			Str("comment_id", commentID).
			Int("code", apiErr.Code).
			Str("type", apiErr.Type).
			Str("message", apiErr.Message).
			Msg("graph api rejected private reply")
		return
	}
	log.Error().Err(err).Str("comment_id", commentID).Msg("private reply request failed")
}
