package server

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

// requestIDHeader echoes the id that tags every log line of a request.
const requestIDHeader = "X-Request-Id"

// logRequests attaches the server logger and a request id to each request
// and writes one access line when it completes.
func (s *Server) logRequests() []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		hlog.NewHandler(s.log),
		hlog.RequestIDHandler("req_id", requestIDHeader),
		hlog.AccessHandler(func(r *http.Request, status, size int, took time.Duration) {
			ev := hlog.FromRequest(r).Info()
			if status >= 500 {
				ev = hlog.FromRequest(r).Error()
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", size).
				Dur("took", took).
				Msg("request")
		}),
	}
}

// cors admits the configured frontend origin, with credentials. An empty
// FrontendURL admits no cross-origin callers; "*" admits all of them.
func (s *Server) cors() mux.MiddlewareFunc {
	return handlers.CORS(
		handlers.AllowedOriginValidator(func(origin string) bool {
			return origin != "" && (s.cfg.FrontendURL == "*" || origin == s.cfg.FrontendURL)
		}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}
