// Package server exposes analysis, explanations and game history over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/abhisek/chesscoach/internal/analysis"
	"github.com/abhisek/chesscoach/internal/coach"
	"github.com/abhisek/chesscoach/internal/lichess"
	"github.com/abhisek/chesscoach/internal/notify"
)

// Analyzer runs and records one game analysis.
type Analyzer interface {
	Analyze(ctx context.Context, game analysis.Game) (*analysis.Result, error)
}

// Explainer produces coaching text.
type Explainer interface {
	ExplainGame(ctx context.Context, records []analysis.MoveRecord) (*coach.Explanation, error)
	ExplainReport(ctx context.Context, report string) (*coach.Explanation, error)
}

// GameSource lists a player's games as raw JSON objects.
type GameSource interface {
	RawUserGames(ctx context.Context, username string, opts lichess.GamesOptions) ([]json.RawMessage, error)
}

// Notifier relays contact details.
type Notifier interface {
	Configured() bool
	Send(ctx context.Context, fields ...notify.Field) error
}

// Config holds listener settings.
type Config struct {
	Addr        string
	FrontendURL string
}

// ConfigFromEnv reads CHESSCOACH_ADDR and CHESSCOACH_FRONTEND_URL.
func ConfigFromEnv() Config {
	cfg := Config{Addr: ":8000"}
	if v := os.Getenv("CHESSCOACH_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.FrontendURL = os.Getenv("CHESSCOACH_FRONTEND_URL")
	return cfg
}

// Deps are the collaborators behind the endpoints. Explainer and Notifier
// may be nil, in which case their endpoints report an error.
type Deps struct {
	Analyzer  Analyzer
	Explainer Explainer
	Games     GameSource
	Notifier  Notifier
}

// Server is the HTTP API.
type Server struct {
	cfg    Config
	deps   Deps
	log    zerolog.Logger
	router *mux.Router
}

// New builds the router.
func New(cfg Config, deps Deps, log zerolog.Logger) *Server {
	s := &Server{cfg: cfg, deps: deps, log: log, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.logRequests()...)
	r.Use(s.cors())

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/api/lichess/{username}", s.handleLichessGames).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/explain", s.handleExplain).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/send-details", s.handleSendDetails).Methods(http.MethodPost, http.MethodOptions)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
