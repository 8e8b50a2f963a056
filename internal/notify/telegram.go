// Package notify forwards short messages to a Telegram chat.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultAPIURL is the Telegram Bot API.
const DefaultAPIURL = "https://api.telegram.org"

// ErrNotConfigured is returned when the bot token or chat ID is missing.
var ErrNotConfigured = errors.New("telegram bot token or chat ID not set")

// StatusError reports a rejected sendMessage call.
type StatusError struct {
	StatusCode  int
	Description string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("telegram: status %d: %s", e.StatusCode, e.Description)
}

// Field is one "Key: value" line of a message.
type Field struct {
	Key   string
	Value string
}

// Telegram posts messages through a bot.
type Telegram struct {
	Token  string
	ChatID string
	APIURL string
	Client *http.Client
}

// FromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID.
func FromEnv() *Telegram {
	return &Telegram{
		Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}
}

// Configured reports whether both token and chat ID are set.
func (t *Telegram) Configured() bool {
	return t != nil && t.Token != "" && t.ChatID != ""
}

// Format renders fields as one "Key: value" line each, in order.
func Format(fields ...Field) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Key + ": " + f.Value
	}
	return strings.Join(lines, "\n")
}

// Send posts the formatted fields to the configured chat.
func (t *Telegram) Send(ctx context.Context, fields ...Field) error {
	return t.SendText(ctx, Format(fields...))
}

// SendText posts text as-is.
func (t *Telegram) SendText(ctx context.Context, text string) error {
	if !t.Configured() {
		return ErrNotConfigured
	}

	payload, err := sjson.Set(`{}`, "chat_id", t.ChatID)
	if err != nil {
		return fmt.Errorf("telegram: build payload: %w", err)
	}
	if payload, err = sjson.Set(payload, "text", text); err != nil {
		return fmt.Errorf("telegram: build payload: %w", err)
	}

	base := t.APIURL
	if base == "" {
		base = DefaultAPIURL
	}
	u := strings.TrimRight(base, "/") + "/bot" + t.Token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		// The URL embeds the bot token; keep it out of the error.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("telegram: send: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	res := gjson.ParseBytes(body)
	if resp.StatusCode != http.StatusOK || !res.Get("ok").Bool() {
		desc := res.Get("description").String()
		if desc == "" {
			desc = http.StatusText(resp.StatusCode)
		}
		return &StatusError{StatusCode: resp.StatusCode, Description: desc}
	}
	return nil
}
