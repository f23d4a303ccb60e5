package app

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"alfakhama_rentals/internal/adapters/observability"
	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
	"alfakhama_rentals/internal/view"
)

// PageService renders listing pages, caching the HTML per language and tab.
type PageService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewPageService builds the service. A nil cache disables caching.
func NewPageService(c domain.Catalog, cache domain.Cache, ttl time.Duration) *PageService {
	return &PageService{catalog: c, cache: cache, cacheTTL: ttl}
}

// Render returns the page for tab in the language of the provider scoped to ctx.
func (s *PageService) Render(ctx context.Context, tab view.Tab) ([]byte, error) {
	p, err := i18n.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !tab.Valid() {
		return nil, fmt.Errorf("render: %w: %q", view.ErrUnknownTab, tab)
	}

	lang := p.Language()
	key := pageKey(lang, tab)
	if s.cache != nil {
		var cached string
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("page cache get failed")
		}
		if ok && cached != "" {
			return []byte(cached), nil
		}
	}

	l := view.NewListing(p, s.catalog)
	defer l.Close()
	if err := l.SetActiveTab(tab); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := l.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render %s/%s: %w", lang, tab, err)
	}
	observability.ObservePageRender(string(lang), string(tab))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, buf.String(), int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("page cache set failed")
		}
	}
	return buf.Bytes(), nil
}

// Invalidate drops every cached page.
func (s *PageService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	for _, l := range domain.Langs() {
		for _, t := range []view.Tab{view.TabCars, view.TabProperties} {
			if err := s.cache.Del(ctx, pageKey(l, t)); err != nil {
				return fmt.Errorf("invalidate %s: %w", pageKey(l, t), err)
			}
		}
	}
	return nil
}

func pageKey(lang domain.Lang, tab view.Tab) string {
	return fmt.Sprintf("page:%s:%s", lang, tab)
}
