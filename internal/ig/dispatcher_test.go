package ig

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchSendsConfiguredMessage(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"message_id":"m1"}`))
	}))
	defer srv.Close()

	d := NewReplyDispatcher(NewClient(srv.URL, "page-token"), "the fixed reply")
	d.Dispatch(context.Background(), "c42")

	assert.Contains(t, string(gotBody), `"comment_id":"c42"`)
	assert.Contains(t, string(gotBody), `"text":"the fixed reply"`)
}

func TestDispatchContainsApplicationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"outside allowed window","type":"OAuthException","code":10}}`))
	}))
	defer srv.Close()

	d := NewReplyDispatcher(NewClient(srv.URL, "page-token"), "hi")

	// must not panic or propagate anything
	d.Dispatch(context.Background(), "c42")
}

func TestDispatchContainsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	d := NewReplyDispatcher(NewClient(srv.URL, "page-token"), "hi")
	d.Dispatch(context.Background(), "c42")
}
