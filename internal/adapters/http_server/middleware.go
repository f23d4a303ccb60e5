package httpserver

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"alfakhama_rentals/internal/adapters/observability"
	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
)

const (
	langParam  = "lang"
	langCookie = "lang"
)

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// ---- status-recording ResponseWriter ----

type srw struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *srw) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *srw) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *srw) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// ---- Metrics middleware ----

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &srw{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		observability.ObserveHTTP(routeOf(r), r.Method, sw.Status(), time.Since(start))
	})
}

// ---- Structured logging middleware ----

func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &srw{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			l.Info().
				Str("route", routeOf(r)).
				Str("method", r.Method).
				Int("status", sw.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", remoteIP(r)).
				Str("ua", r.UserAgent()).
				Msg("http_request")
		})
	}
}

func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if route := rc.RoutePattern(); route != "" {
			return route
		}
	}
	return r.URL.Path
}

// ---- Localization middleware ----

// Localize scopes a fresh language Provider to each request. The provider
// starts from the session cookie (or the default language); a ?lang= value
// then switches it, which rewrites the session cookie through a listener.
// Handlers that call SetLanguage get the same cookie update.
func Localize(t *i18n.Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := i18n.NewProvider(t, sessionLang(r))
			if err != nil {
				writeProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
				return
			}
			unsubscribe := p.Subscribe(func(l domain.Lang) {
				setLangCookie(w, l)
				observability.ObserveLanguageSwitch(string(l))
			})
			defer unsubscribe()

			if v := r.URL.Query().Get(langParam); v != "" {
				if l, ok := i18n.MatchLang(v); ok {
					_ = p.SetLanguage(l) // MatchLang only yields supported codes
				}
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithProvider(r.Context(), p)))
		})
	}
}

func sessionLang(r *http.Request) domain.Lang {
	if c, err := r.Cookie(langCookie); err == nil {
		if l, ok := i18n.MatchLang(c.Value); ok {
			return l
		}
	}
	return domain.DefaultLang
}

// setLangCookie stores the language for the browser session only.
func setLangCookie(w http.ResponseWriter, l domain.Lang) {
	http.SetCookie(w, &http.Cookie{
		Name:     langCookie,
		Value:    string(l),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ---- Rate limiting middleware ----

type limiterSet struct {
	limit rate.Limit
	burst int
	m     sync.Map // client IP -> *rate.Limiter
}

// newLimiterSet returns an unlimited set when perSec is not positive.
func newLimiterSet(perSec float64, burst int) *limiterSet {
	if perSec <= 0 {
		return &limiterSet{limit: rate.Inf, burst: burst}
	}
	return &limiterSet{limit: rate.Limit(perSec), burst: burst}
}

func (s *limiterSet) get(ip string) *rate.Limiter {
	if v, ok := s.m.Load(ip); ok {
		return v.(*rate.Limiter)
	}
	v, _ := s.m.LoadOrStore(ip, rate.NewLimiter(s.limit, s.burst))
	return v.(*rate.Limiter)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiters.get(remoteIP(r)).Allow() {
			next.ServeHTTP(w, r)
			return
		}
		observability.ObserveRateLimited()
		title := http.StatusText(http.StatusTooManyRequests)
		if p, err := i18n.FromContext(r.Context()); err == nil {
			title = p.T(i18n.KeyErrRateLimit)
		}
		w.Header().Set("Retry-After", "1")
		writeProblem(w, http.StatusTooManyRequests, title, "")
	})
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
