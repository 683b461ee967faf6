package types

import (
	"encoding/json"
	"testing"
)

func TestNotificationBatchUnmarshal(t *testing.T) {
	data := []byte(`{
		"object": "instagram",
		"entry": [{
			"id": "17890",
			"changes": [{
				"field": "comments",
				"value": {"comment_id": "c1", "text": "hi", "from": {"id": "u1", "username": "alice"}}
			}]
		}]
	}`)
	var b NotificationBatch
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if b.Object != "instagram" {
		t.Fatalf("expected object instagram, got %q", b.Object)
	}
	if got := b.Entry[0].Changes[0].Value.CommentID; got != "c1" {
		t.Fatalf("expected comment_id c1, got %q", got)
	}
}

func TestNotificationBatchToleratesAbsentFields(t *testing.T) {
	// heartbeat-style entry without changes, and a value without text/id
	data := []byte(`{
		"object": "instagram",
		"entry": [
			{"id": "17890"},
			{"id": "17891", "changes": [{"field": "comments", "value": {}}]}
		]
	}`)
	var b NotificationBatch
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if b.Entry[0].Changes != nil {
		t.Fatalf("expected nil changes on heartbeat entry")
	}
	v := b.Entry[1].Changes[0].Value
	if v.Text != "" || v.CommentID != "" {
		t.Fatalf("expected empty value fields, got %+v", v)
	}
}
