package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/lichess"
	"github.com/abhisek/chesscoach/internal/llm"
	"github.com/abhisek/chesscoach/internal/notify"
)

const game = `[White "Alice"]
[Black "Bob"]

1. e4 e5 *`

func scriptedAnalyzer(t *testing.T) *analysis.Service {
	t.Helper()
	g, err := analysis.ParseGame(game)
	require.NoError(t, err)
	ev := analysis.NewScriptedEvaluator()
	for _, pos := range g.Positions() {
		ev.Set(pos.String(), analysis.ScriptedPosition{
			Candidates: []analysis.Candidate{{Move: "d2d4"}, {Move: "g1f3"}},
		})
	}
	return analysis.NewService(analysis.NewAnalyzer(ev), nil, zerolog.Nop())
}

type failingAnalyzer struct{ err error }

func (f failingAnalyzer) Analyze(context.Context, analysis.Game) (*analysis.Result, error) {
	return nil, f.err
}

type fakeNotifier struct {
	configured bool
	err        error
	sent       [][]notify.Field
}

func (f *fakeNotifier) Configured() bool { return f.configured }

func (f *fakeNotifier) Send(_ context.Context, fields ...notify.Field) error {
	f.sent = append(f.sent, fields)
	return f.err
}

func explainer(responses ...llm.MockResponse) (*coach.Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return coach.NewService(mock, coach.DefaultConfig(), nil, zerolog.Nop()), mock
}

func explanation() llm.MockResponse {
	return llm.MockJSON(coach.Explanation{
		Summary:     "Solid opening play.",
		Why:         "Both moves fight for the centre.",
		BetterPlan:  "Keep developing.",
		KeyConcepts: []string{"centre control"},
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newServer(deps Deps) http.Handler {
	return New(Config{FrontendURL: "http://localhost:5173"}, deps, zerolog.Nop()).Handler()
}

func TestRoot(t *testing.T) {
	rec := do(t, newServer(Deps{}), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestAnalyze(t *testing.T) {
	h := newServer(Deps{Analyzer: scriptedAnalyzer(t)})
	rec := do(t, h, http.MethodPost, "/api/analyze", `{"username":"alice","pgn":`+jsonString(game)+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := gjson.Parse(rec.Body.String())
	require.True(t, body.IsArray())
	assert.Len(t, body.Array(), 1)
	assert.Equal(t, "e2e4", body.Get("0.uci_move").String())
	assert.Equal(t, "Good", body.Get("0.classification").String())
	assert.Equal(t, "d2d4", body.Get("0.best_move").String())
	assert.True(t, body.Get("0.pv_before").IsArray())
}

func TestAnalyze_ClientErrors(t *testing.T) {
	h := newServer(Deps{Analyzer: scriptedAnalyzer(t)})
	for name, body := range map[string]string{
		"unknown player": `{"username":"carol","pgn":` + jsonString(game) + `}`,
		"empty pgn":      `{"username":"alice","pgn":""}`,
		"not json":       `username=alice`,
	} {
		rec := do(t, h, http.MethodPost, "/api/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.True(t, gjson.Get(rec.Body.String(), "detail").Exists(), name)
	}
}

func TestAnalyze_EvaluatorFailure(t *testing.T) {
	h := newServer(Deps{Analyzer: failingAnalyzer{err: fmt.Errorf("analyze ply 1: %w", errors.New("engine crashed"))}})
	rec := do(t, h, http.MethodPost, "/api/analyze", `{"username":"alice","pgn":"x"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "engine crashed")
}

func TestExplain_Records(t *testing.T) {
	svc, mock := explainer(explanation())
	h := newServer(Deps{Explainer: svc})

	records := `[{"ply":1,"move_number":1,"uci_move":"e2e4","san":"e4","fen_before":"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1","evaluation_before":0.2,"evaluation_after":0.3,"classification":"Good","best_move":"e2e4","pv_before":[],"pv_after":[]}]`
	rec := do(t, h, http.MethodPost, "/api/explain", `{"analysis":`+records+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(gjson.Get(rec.Body.String(), "explanation").String(), "Solid opening play."))
	assert.Equal(t, "Keep developing.", gjson.Get(rec.Body.String(), "structured.better_plan").String())

	req, _ := mock.LastRequest()
	assert.Equal(t, coach.GameExplanationSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "1. e4 (e2e4)")
}

func TestExplain_TextReport(t *testing.T) {
	svc, mock := explainer(explanation())
	h := newServer(Deps{Explainer: svc})

	rec := do(t, h, http.MethodPost, "/api/explain", `{"analysis":"Move 3: Blunder"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	req, _ := mock.LastRequest()
	assert.Contains(t, req.Messages[0].Content, "Move 3: Blunder")
}

func TestExplain_Missing(t *testing.T) {
	svc, mock := explainer()
	h := newServer(Deps{Explainer: svc})
	for _, body := range []string{`{}`, `{"analysis":null}`, `{"analysis":""}`, `{"analysis":[]}`} {
		rec := do(t, h, http.MethodPost, "/api/explain", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Analysis report is required", gjson.Get(rec.Body.String(), "detail").String())
	}
	assert.Zero(t, mock.CallCount())
}

func TestExplain_ProviderFailure(t *testing.T) {
	svc, _ := explainer(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	rec := do(t, newServer(Deps{Explainer: svc}), http.MethodPost, "/api/explain", `{"analysis":"report"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, newServer(Deps{}), http.MethodPost, "/api/explain", `{"analysis":"report"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLichessGames(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/games/user/alice":
			assert.Equal(t, "5", r.URL.Query().Get("max"))
			fmt.Fprintln(w, `{"id":"g1","players":{}}`)
			fmt.Fprintln(w, `{"id":"g2","players":{}}`)
		case "/api/games/user/empty":
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)
	h := newServer(Deps{Games: lichess.NewClient(lichess.WithBaseURL(upstream.URL))})

	rec := do(t, h, http.MethodGet, "/api/lichess/alice?max=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g2", gjson.Get(rec.Body.String(), "1.id").String())

	rec = do(t, h, http.MethodGet, "/api/lichess/empty", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/lichess/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error fetching games from Lichess", gjson.Get(rec.Body.String(), "detail").String())

	rec = do(t, h, http.MethodGet, "/api/lichess/alice?max=lots", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendDetails(t *testing.T) {
	n := &fakeNotifier{configured: true}
	h := newServer(Deps{Notifier: n})

	rec := do(t, h, http.MethodPost, "/send-details", `{"lichessId":"alice","email":"a@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Details sent to Telegram"}`, rec.Body.String())
	require.Len(t, n.sent, 1)
	assert.Equal(t, "Lichess ID: alice\nEmail: a@example.com", notify.Format(n.sent[0]...))

	rec = do(t, h, http.MethodPost, "/send-details", `{"lichessId":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendDetails_Failures(t *testing.T) {
	body := `{"lichessId":"alice","email":"a@example.com"}`

	rec := do(t, newServer(Deps{Notifier: &fakeNotifier{}}), http.MethodPost, "/send-details", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "telegram bot token or chat ID not set", gjson.Get(rec.Body.String(), "detail").String())

	rec = do(t, newServer(Deps{}), http.MethodPost, "/send-details", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, newServer(Deps{Notifier: &fakeNotifier{configured: true, err: errors.New("down")}}), http.MethodPost, "/send-details", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send message to Telegram", gjson.Get(rec.Body.String(), "detail").String())
}

func TestCORS(t *testing.T) {
	h := newServer(Deps{Notifier: &fakeNotifier{}})

	req := httptest.NewRequest(http.MethodOptions, "/send-details", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/send-details", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Wildcard(t *testing.T) {
	h := New(Config{FrontendURL: "*"}, Deps{}, zerolog.Nop()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFound(t *testing.T) {
	rec := do(t, newServer(Deps{}), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", gjson.Get(rec.Body.String(), "detail").String())
}

func TestRequestLogging(t *testing.T) {
	var buf strings.Builder
	h := New(Config{}, Deps{}, zerolog.New(&buf)).Handler()
	rec := do(t, h, http.MethodGet, "/", "")
	line := buf.String()
	assert.Equal(t, "/", gjson.Get(line, "path").String())
	assert.Equal(t, int64(200), gjson.Get(line, "status").Int())
	assert.Equal(t, "info", gjson.Get(line, "level").String())

	id := rec.Header().Get("X-Request-Id")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, gjson.Get(line, "req_id").String())
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
