package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/lichess"
	"github.com/abhisek/chesscoach/internal/notify"
)

const maxBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return nil, false
	}
	if !gjson.ValidBytes(body) {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return nil, false
	}
	return body, true
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (s *Server) handleLichessGames(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	var opts lichess.GamesOptions
	if v := r.URL.Query().Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "max must be a non-negative integer")
			return
		}
		opts.Max = n
	}

	games, err := s.deps.Games.RawUserGames(r.Context(), username, opts)
	if err != nil {
		var se *lichess.StatusError
		if errors.As(err, &se) {
			writeError(w, se.StatusCode, "Error fetching games from Lichess")
			return
		}
		s.log.Error().Err(err).Str("username", username).Msg("lichess fetch failed")
		writeError(w, http.StatusBadGateway, "Error fetching games from Lichess")
		return
	}
	if games == nil {
		games = []json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, games)
}

type analyzeRequest struct {
	Username string `json:"username"`
	PGN      string `json:"pgn"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.deps.Analyzer.Analyze(r.Context(), analysis.Game{Identity: req.Username, PGN: req.PGN, Source: "http"})
	switch {
	case errors.Is(err, analysis.ErrInvalidInput), errors.Is(err, analysis.ErrIdentityNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error().Err(err).Str("username", req.Username).Msg("analysis failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	records := res.Records
	if records == nil {
		records = []analysis.MoveRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	a := gjson.GetBytes(body, "analysis")
	if isEmpty(a) {
		writeError(w, http.StatusBadRequest, "Analysis report is required")
		return
	}
	if s.deps.Explainer == nil {
		writeError(w, http.StatusInternalServerError, "Failed to get explanation: no LLM provider configured")
		return
	}

	var (
		exp *coach.Explanation
		err error
	)
	switch records, isRecords := moveRecords(a); {
	case isRecords:
		exp, err = s.deps.Explainer.ExplainGame(r.Context(), records)
	case a.Type == gjson.String:
		exp, err = s.deps.Explainer.ExplainReport(r.Context(), a.String())
	default:
		exp, err = s.deps.Explainer.ExplainReport(r.Context(), a.Raw)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("explanation failed")
		writeError(w, http.StatusInternalServerError, "Failed to get explanation: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"explanation": exp.String(), "structured": exp})
}

func isEmpty(a gjson.Result) bool {
	switch {
	case !a.Exists(), a.Type == gjson.Null:
		return true
	case a.Type == gjson.String:
		return strings.TrimSpace(a.String()) == ""
	case a.IsArray():
		return len(a.Array()) == 0
	case a.IsObject():
		return len(a.Map()) == 0
	}
	return false
}

// moveRecords decodes an analysis given either as the record list returned
// by /api/analyze or as a full result object with a "moves" list.
func moveRecords(a gjson.Result) ([]analysis.MoveRecord, bool) {
	raw := a
	if a.IsObject() {
		raw = a.Get("moves")
	}
	if !raw.IsArray() || !raw.Get("0.uci_move").Exists() {
		return nil, false
	}
	var records []analysis.MoveRecord
	if err := json.Unmarshal([]byte(raw.Raw), &records); err != nil {
		return nil, false
	}
	return records, true
}

type detailsRequest struct {
	LichessID string `json:"lichessId"`
	Email     string `json:"email"`
}

func (s *Server) handleSendDetails(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	var req detailsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.LichessID == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "lichessId and email are required")
		return
	}
	if s.deps.Notifier == nil || !s.deps.Notifier.Configured() {
		writeError(w, http.StatusInternalServerError, notify.ErrNotConfigured.Error())
		return
	}

	err := s.deps.Notifier.Send(r.Context(),
		notify.Field{Key: "Lichess ID", Value: req.LichessID},
		notify.Field{Key: "Email", Value: req.Email},
	)
	if err != nil {
		s.log.Error().Err(err).Msg("telegram relay failed")
		writeError(w, http.StatusInternalServerError, "Failed to send message to Telegram")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Details sent to Telegram"})
}
