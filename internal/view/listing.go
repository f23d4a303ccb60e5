// Package view builds and renders the bilingual listing page.
package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
)

// Listing is the page state for one visitor: the active tab plus a layout
// that tracks the provider's language.
type Listing struct {
	provider *i18n.Provider
	catalog  domain.Catalog

	mu          sync.Mutex
	tab         Tab
	layout      Layout
	unsubscribe func()
}

func NewListing(p *i18n.Provider, c domain.Catalog) *Listing {
	l := &Listing{
		provider: p,
		catalog:  c,
		tab:      DefaultTab,
		layout:   LayoutFor(p.Language()),
	}
	l.unsubscribe = p.Subscribe(l.languageChanged)
	return l
}

func (l *Listing) languageChanged(lang domain.Lang) {
	l.mu.Lock()
	l.layout = LayoutFor(lang)
	l.mu.Unlock()
}

// Close detaches the listing from its provider.
func (l *Listing) Close() { l.unsubscribe() }

func (l *Listing) ActiveTab() Tab {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tab
}

func (l *Listing) SetActiveTab(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("set active tab: %w: %q", ErrUnknownTab, t)
	}
	l.mu.Lock()
	l.tab = t
	l.mu.Unlock()
	return nil
}

func (l *Listing) Layout() Layout {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.layout
}

// Page builds the render model for the current language and tab.
func (l *Listing) Page() Page {
	p := l.provider
	lang := p.Language()
	tab := l.ActiveTab()

	page := Page{
		Lang:       lang,
		Layout:     l.Layout(),
		Tab:        tab,
		SiteName:   p.T(i18n.KeySiteName),
		NavContact: p.T(i18n.KeyNavContact),
		NavAbout:   p.T(i18n.KeyNavAbout),
		Switch: LanguageSwitch{
			Label: p.T(i18n.KeyLanguageSwitch),
			Lang:  lang.Other(),
		},
		Hero: Hero{
			Title:             p.T(i18n.KeyHeroTitle),
			Subtitle:          p.T(i18n.KeyHeroSubtitle),
			SearchPlaceholder: p.T(i18n.KeyHeroSearch),
			Image:             heroImage,
		},
		Tabs: []TabLink{
			{ID: TabCars, Label: p.T(i18n.KeyTabsCars), Icon: "car", Active: tab == TabCars},
			{ID: TabProperties, Label: p.T(i18n.KeyTabsProperties), Icon: "building-2", Active: tab == TabProperties},
		},
		BookNow: p.T(i18n.KeyBookNow),
		Contact: Contact{
			Title: p.T(i18n.KeyContactTitle),
			Phone: contactPhone,
			Email: contactEmail,
		},
		Rights: p.T(i18n.KeyFooterRights),
	}

	switch tab {
	case TabProperties:
		unit, bedrooms := p.T(i18n.KeyPricePerMonth), p.T(i18n.KeyBedrooms)
		for _, pr := range l.catalog.Properties() {
			page.Cards = append(page.Cards, Card{
				Kind:          TabProperties,
				ID:            pr.ID,
				Name:          pr.Name.In(lang),
				Detail:        pr.Location.In(lang),
				Image:         pr.Image,
				Price:         pr.Price,
				PriceUnit:     unit,
				Property:      true,
				Bedrooms:      pr.Bedrooms,
				BedroomsLabel: bedrooms,
			})
		}
	default:
		unit := p.T(i18n.KeyCarPricePerDay)
		for _, v := range l.catalog.Vehicles() {
			page.Cards = append(page.Cards, Card{
				Kind:      TabCars,
				ID:        v.ID,
				Name:      v.Name.In(lang),
				Detail:    v.Type.In(lang),
				Image:     v.Image,
				Price:     v.Price,
				PriceUnit: unit,
			})
		}
	}
	return page
}

// Render writes the current page as HTML.
func (l *Listing) Render(ctx context.Context, w io.Writer) error {
	return l.Page().Component().Render(ctx, w)
}
