package lichess

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameOne = `{"id":"q7ZvsdUF","rated":true,"variant":"standard","speed":"blitz","perf":"blitz","createdAt":1709251200000,"status":"mate","players":{"white":{"user":{"name":"Alice","id":"alice"},"rating":1650},"black":{"user":{"name":"Bob","id":"bob"},"rating":1702}},"winner":"white","opening":{"eco":"C20","name":"King's Pawn Game"},"pgn":"[White \"Alice\"]\n[Black \"Bob\"]\n\n1. e4 e5 *\n"}`

const gameTwo = `{"id":"AiGame01","rated":false,"speed":"rapid","createdAt":1709164800000,"status":"resign","players":{"white":{"aiLevel":3},"black":{"user":{"name":"Alice","id":"alice"},"rating":1650}},"winner":"white","pgn":"1. d4 d5 *"}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL + "/"))
}

func TestUserGames(t *testing.T) {
	var gotPath, gotAccept string
	var gotQuery map[string][]string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAccept, gotQuery = r.URL.Path, r.Header.Get("Accept"), r.URL.Query()
		w.Header().Set("Content-Type", "application/x-ndjson")
		fmt.Fprintf(w, "%s\n\n%s\n", gameOne, gameTwo)
	})

	rated := true
	games, err := c.UserGames(context.Background(), "Alice", GamesOptions{Max: 2, PerfType: "blitz", Rated: &rated})
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "/api/games/user/Alice", gotPath)
	assert.Equal(t, "application/x-ndjson", gotAccept)
	assert.Equal(t, []string{"true"}, gotQuery["pgnInJson"])
	assert.Equal(t, []string{"2"}, gotQuery["max"])
	assert.Equal(t, []string{"blitz"}, gotQuery["perfType"])
	assert.Equal(t, []string{"true"}, gotQuery["rated"])

	g := games[0]
	assert.Equal(t, "q7ZvsdUF", g.ID)
	assert.True(t, g.Rated)
	assert.Equal(t, "Alice", g.White.Name)
	assert.Equal(t, 1702, g.Black.Rating)
	assert.Equal(t, "King's Pawn Game", g.Opening)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), g.CreatedAt)
	assert.Contains(t, g.PGN, "1. e4 e5")
	assert.Equal(t, "won", g.Result("alice"))
	assert.Equal(t, "Bob", g.Opponent("ALICE").Name)
	assert.Equal(t, "white", g.Side("alice"))
	assert.Equal(t, "", g.Side("carol"))

	ai := games[1]
	assert.Equal(t, "Stockfish level 3", ai.White.Name)
	assert.Equal(t, "lost", ai.Result("alice"))
	assert.True(t, ai.Plays("Alice"))
	assert.Equal(t, "black", ai.Side("Alice"))
	assert.False(t, ai.Plays("carol"))
}

func TestRawUserGames(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, gameOne)
	})
	raw, err := c.RawUserGames(context.Background(), "alice", GamesOptions{})
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.JSONEq(t, gameOne, string(raw[0]))
}

func TestUserGames_StatusError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	_, err := c.UserGames(context.Background(), "nobody", GamesOptions{})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "not found", se.Body)
}

func TestUserGames_InvalidLine(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s\n{not json\n", gameOne)
	})
	_, err := c.UserGames(context.Background(), "alice", GamesOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestUserGames_TokenAndEmptyUser(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	c := NewClient(WithBaseURL(srv.URL), WithToken("lip_secret"))
	games, err := c.UserGames(context.Background(), "alice", GamesOptions{})
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.Equal(t, "Bearer lip_secret", auth)

	_, err = c.UserGames(context.Background(), "  ", GamesOptions{})
	assert.Error(t, err)
}

func TestGamesOptions_Since(t *testing.T) {
	q := GamesOptions{Since: time.UnixMilli(1700000000000)}.query()
	assert.Equal(t, "1700000000000", q.Get("since"))
	assert.Empty(t, q.Get("max"))
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("CHESSCOACH_LICHESS_URL", "http://lichess.test/")
	t.Setenv("CHESSCOACH_LICHESS_TOKEN", "tok")
	c := NewClientFromEnv(WithTimeout(time.Second))
	assert.Equal(t, "http://lichess.test", c.baseURL)
	assert.Equal(t, "tok", c.token)
	assert.Equal(t, time.Second, c.http.Timeout)
}

func TestGameResult_Draw(t *testing.T) {
	g := Game{Status: "draw", White: Player{Name: "a"}, Black: Player{Name: "b"}}
	assert.Equal(t, "drawn", g.Result("a"))
	assert.True(t, strings.HasPrefix((&StatusError{StatusCode: 429}).Error(), "lichess: unexpected status 429"))
}
