package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"alfakhama_rentals/internal/i18n"
)

type Options struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second per client IP; <= 0 disables limiting
	RateBurst int
}

type Server struct {
	mux      *chi.Mux
	limiters *limiterSet
}

func New(table *i18n.Table, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	m := chi.NewRouter()
	s := &Server{mux: m, limiters: newLimiterSet(opts.RateLimit, opts.RateBurst)}

	// All middlewares go here (before any routes are added)
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(Localize(table))
	m.Use(s.rateLimit)

	return s
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
