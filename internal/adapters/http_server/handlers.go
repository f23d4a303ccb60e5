package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"alfakhama_rentals/internal/app"
	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
	"alfakhama_rentals/internal/view"
)

type Handlers struct{ Pages *app.PageService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.index)
	s.mux.Post("/language", h.switchLanguage)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETag hashes a rendered body into a weak validator.
func calcETag(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

func providerOrProblem(w http.ResponseWriter, r *http.Request) (*i18n.Provider, bool) {
	p, err := i18n.FromContext(r.Context())
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("handler mounted outside Localize")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return nil, false
	}
	return p, true
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	p, ok := providerOrProblem(w, r)
	if !ok {
		return
	}

	tab, err := view.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, p.T(i18n.KeyErrInvalidTab), err.Error())
		return
	}

	body, err := h.Pages.Render(r.Context(), tab)
	if err != nil {
		log.Error().Err(err).Str("lang", string(p.Language())).Str("tab", string(tab)).Msg("page render failed")
		writeProblem(w, http.StatusInternalServerError, p.T(i18n.KeyErrRender), "")
		return
	}

	etag := calcETag(body)
	w.Header().Set("Vary", "Cookie")
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(p.Language()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

// switchLanguage sets the session language from the "lang" form field, or
// toggles it when the field is empty, then returns to the page.
func (h *Handlers) switchLanguage(w http.ResponseWriter, r *http.Request) {
	p, ok := providerOrProblem(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid form body")
		return
	}

	tab, err := view.ParseTab(r.PostFormValue("tab"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, p.T(i18n.KeyErrInvalidTab), err.Error())
		return
	}

	if v := r.PostFormValue("lang"); v == "" {
		p.Toggle()
	} else if err := p.SetLanguage(domain.Lang(v)); err != nil {
		writeProblem(w, http.StatusBadRequest, p.T(i18n.KeyErrInvalidLang), err.Error())
		return
	}

	http.Redirect(w, r, "/?"+url.Values{"tab": {string(tab)}}.Encode(), http.StatusSeeOther)
}
