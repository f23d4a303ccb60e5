// Package i18n holds the active UI language and the translation table.
package i18n

import (
	"fmt"
	"slices"
	"sync"

	"alfakhama_rentals/internal/domain"
)

// Provider is an observable cell holding the active language. Listeners run
// synchronously, in subscription order, after each real change.
type Provider struct {
	table *Table

	mu     sync.RWMutex
	lang   domain.Lang
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(domain.Lang)
}

// NewProvider starts at lang, or at the default language when lang is empty.
func NewProvider(t *Table, lang domain.Lang) (*Provider, error) {
	if lang == "" {
		lang = domain.DefaultLang
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("new provider: %w: %q", domain.ErrUnsupportedLanguage, lang)
	}
	return &Provider{table: t, lang: lang}, nil
}

func (p *Provider) Language() domain.Lang {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

func (p *Provider) Direction() Direction { return DirectionOf(p.Language()) }

// SetLanguage replaces the active language. Unsupported codes are rejected
// and leave the state untouched.
func (p *Provider) SetLanguage(l domain.Lang) error {
	if !l.Valid() {
		return fmt.Errorf("set language: %w: %q", domain.ErrUnsupportedLanguage, l)
	}

	p.mu.Lock()
	if p.lang == l {
		p.mu.Unlock()
		return nil
	}
	p.lang = l
	subs := slices.Clone(p.subs)
	p.mu.Unlock()

	for _, s := range subs {
		s.fn(l)
	}
	return nil
}

// Toggle switches between Arabic and English and returns the new language.
func (p *Provider) Toggle() domain.Lang {
	next := p.Language().Other()
	_ = p.SetLanguage(next) // Other always yields a supported code
	return next
}

// Translate returns key's entry for the active language, or key itself.
func (p *Provider) Translate(key string) string {
	return p.table.Translate(p.Language(), key)
}

func (p *Provider) T(k Key) string { return p.Translate(string(k)) }

// Subscribe registers fn for language changes. The returned func removes it.
func (p *Provider) Subscribe(fn func(domain.Lang)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs = append(p.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.subs = slices.DeleteFunc(p.subs, func(s subscription) bool { return s.id == id })
		})
	}
}
