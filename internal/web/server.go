package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jaminalder/tictactoe-ai/internal/app"
)

// Options tunes the HTTP surface.
type Options struct {
	// Heartbeat is the keep-alive interval for SSE and websocket feeds.
	Heartbeat time.Duration
	// Profiling mounts net/http/pprof under /debug.
	Profiling bool
}

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, opts Options) http.Handler {
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = 15 * time.Second
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	if opts.Profiling {
		r.Mount("/debug", middleware.Profiler())
	}

	h := &handlers{svc: s, tpl: loadTemplates(), heartbeat: opts.Heartbeat}
	r.Get("/", h.index)
	r.Post("/match", h.create)
	r.Route("/match/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/join", h.join)
		r.Post("/play", h.play)
		r.Post("/mode", h.mode)
		r.Post("/reset", h.resetScores)
		r.Get("/state", h.state)
		r.Get("/events", h.events)
		r.Get("/ws", h.socket)
	})
	return r
}
