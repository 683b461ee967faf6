package types

// IG webhook envelope. The platform treats most fields as optional and
// evolves the schema over time; zero values mean the field was absent.
type NotificationBatch struct {
	Object string              `json:"object"`
	Entry  []NotificationEntry `json:"entry"`
}

type NotificationEntry struct {
	ID      string        `json:"id"`
	Changes []ChangeEvent `json:"changes"` // absent on heartbeat entries
}

type ChangeEvent struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue carries comment data. Text and CommentID are both absent for
// media/sticker comments and for comments deleted before delivery.
type ChangeValue struct {
	CommentID string `json:"comment_id"`
	Text      string `json:"text"`
	From      Author `json:"from"`
}

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
