package processor

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"ig-autoreply/internal/types"
)

// ReplyDispatcher sends one private reply addressed to a comment. It has no
// error return; delivery problems stay inside the dispatcher.
type ReplyDispatcher interface {
	Dispatch(ctx context.Context, commentID string)
}

type CommentProcessor struct {
	dispatcher ReplyDispatcher
	keyword    string // lower-cased once at construction
}

func NewCommentProcessor(dispatcher ReplyDispatcher, keyword string) *CommentProcessor {
	return &CommentProcessor{
		dispatcher: dispatcher,
		keyword:    strings.ToLower(keyword),
	}
}

// Process walks a notification batch and dispatches one private reply per
// comment whose text contains the trigger keyword. Dispatches run
// sequentially and each is awaited before the next change is examined.
// Returns the number of dispatches issued.
func (p *CommentProcessor) Process(ctx context.Context, batch types.NotificationBatch) int {
	matched := 0
	for _, entry := range batch.Entry {
		// Changes is nil on heartbeat entries; the range is a no-op then.
		for _, ch := range entry.Changes {
			if ch.Field != "comments" {
				continue
			}
			v := ch.Value
			if v.Text == "" || v.CommentID == "" {
				// media/sticker comment, or deleted before delivery
				log.Debug().Str("entry_id", entry.ID).Msg("comment change without text or id, skipping")
				continue
			}
			if !strings.Contains(strings.ToLower(v.Text), p.keyword) {
				continue
			}

			log.Info().
				Str("comment_id", v.CommentID).
				Str("from", v.From.Username).
				Msg("trigger keyword matched")
			p.dispatcher.Dispatch(ctx, v.CommentID)
			matched++
		}
	}
	return matched
}
