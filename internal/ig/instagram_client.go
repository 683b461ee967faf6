package ig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	HTTP       *http.Client
	BaseURL    string // e.g. https://graph.facebook.com
	APIToken   string // page access token
	APIVersion string // e.g. v21.0
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		APIToken:   apiToken,
		APIVersion: "v21.0",
	}
}

// APIError is the error object the Graph API returns in an otherwise
// well-formed response body.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api error %d (%s): %s", e.Code, e.Type, e.Message)
}

// SendPrivateReply sends a DM addressed to a comment. Per the platform's
// private-reply semantics the recipient is the comment id, not a user id.
func (c *Client) SendPrivateReply(ctx context.Context, commentID, message string) error {
	u := fmt.Sprintf("%s/%s/me/messages?access_token=%s",
		c.BaseURL, c.APIVersion, url.QueryEscape(c.APIToken))
	body := map[string]any{
		"recipient": map[string]string{"comment_id": commentID},
		"message":   map[string]string{"text": message},
	}
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Error *APIError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode private reply response: %w", err)
	}
	if out.Error != nil {
		return out.Error
	}
	return nil
}
