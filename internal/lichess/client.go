// Package lichess fetches a player's game history from the Lichess API.
package lichess

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public Lichess API.
const DefaultBaseURL = "https://lichess.org"

// maxLine bounds one NDJSON record. A long game's PGN with clock comments
// runs to tens of kilobytes.
const maxLine = 4 << 20

// StatusError reports a non-200 answer from Lichess.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lichess: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("lichess: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Lichess games export endpoint.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another server, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithToken sets a personal API token, which raises rate limits.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a Client for the public API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromEnv applies CHESSCOACH_LICHESS_URL and
// CHESSCOACH_LICHESS_TOKEN before opts.
func NewClientFromEnv(opts ...Option) *Client {
	var env []Option
	if u := os.Getenv("CHESSCOACH_LICHESS_URL"); u != "" {
		env = append(env, WithBaseURL(u))
	}
	if t := os.Getenv("CHESSCOACH_LICHESS_TOKEN"); t != "" {
		env = append(env, WithToken(t))
	}
	return NewClient(append(env, opts...)...)
}

// GamesOptions filters a game export.
type GamesOptions struct {
	// Max limits the number of games. Zero means the server default (all).
	Max int

	// PerfType restricts to one speed, e.g. "blitz" or "rapid".
	PerfType string

	// Rated restricts to rated (true) or casual (false) games.
	Rated *bool

	// Since only returns games started at or after this time.
	Since time.Time
}

func (o GamesOptions) query() url.Values {
	q := url.Values{}
	q.Set("pgnInJson", "true")
	if o.Max > 0 {
		q.Set("max", strconv.Itoa(o.Max))
	}
	if o.PerfType != "" {
		q.Set("perfType", o.PerfType)
	}
	if o.Rated != nil {
		q.Set("rated", strconv.FormatBool(*o.Rated))
	}
	if !o.Since.IsZero() {
		q.Set("since", strconv.FormatInt(o.Since.UnixMilli(), 10))
	}
	return q
}

// RawUserGames returns the export as decoded JSON objects, unmodified.
func (c *Client) RawUserGames(ctx context.Context, username string, opts GamesOptions) ([]json.RawMessage, error) {
	var out []json.RawMessage
	err := c.stream(ctx, username, opts, func(line []byte) error {
		out = append(out, json.RawMessage(append([]byte(nil), line...)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserGames returns the user's games, newest first.
func (c *Client) UserGames(ctx context.Context, username string, opts GamesOptions) ([]Game, error) {
	var out []Game
	err := c.stream(ctx, username, opts, func(line []byte) error {
		out = append(out, parseGame(gjson.ParseBytes(line)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) stream(ctx context.Context, username string, opts GamesOptions, each func([]byte) error) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("lichess: username is required")
	}

	u := fmt.Sprintf("%s/api/games/user/%s?%s", c.baseURL, url.PathEscape(username), opts.query().Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("lichess: build request: %w", err)
	}
	req.Header.Set("Accept", "application/x-ndjson")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("lichess: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64<<10), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			return fmt.Errorf("lichess: line %d is not valid JSON", n)
		}
		if err := each(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("lichess: read games: %w", err)
	}
	return nil
}
