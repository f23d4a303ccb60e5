package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
)

func newProvider(t *testing.T) *i18n.Provider {
	t.Helper()
	p, err := i18n.NewProvider(i18n.MustLoadTable(), "")
	require.NoError(t, err)
	return p
}

func TestProvider_DefaultsToArabic(t *testing.T) {
	p := newProvider(t)

	assert.Equal(t, domain.LangArabic, p.Language())
	assert.Equal(t, i18n.RTL, p.Direction())
	assert.Equal(t, "سيارات", p.Translate("tabs.cars"))
	assert.Equal(t, "الفخامة للإيجار", p.T(i18n.KeySiteName))
}

func TestProvider_SetLanguage(t *testing.T) {
	p := newProvider(t)

	require.NoError(t, p.SetLanguage(domain.LangEnglish))
	assert.Equal(t, domain.LangEnglish, p.Language())
	assert.Equal(t, i18n.LTR, p.Direction())
	assert.Equal(t, "Cars", p.Translate("tabs.cars"))
	assert.Equal(t, "nonexistent.key", p.Translate("nonexistent.key"))
}

func TestProvider_SetLanguageRejectsUnsupported(t *testing.T) {
	p := newProvider(t)
	calls := 0
	p.Subscribe(func(domain.Lang) { calls++ })

	for _, l := range []domain.Lang{"fr", "", "EN"} {
		err := p.SetLanguage(l)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage), "lang %q", l)
	}
	assert.Equal(t, domain.LangArabic, p.Language())
	assert.Zero(t, calls)
}

func TestNewProvider_RejectsUnsupported(t *testing.T) {
	_, err := i18n.NewProvider(i18n.MustLoadTable(), "fr")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
}

func TestProvider_ToggleTwiceRoundTrips(t *testing.T) {
	p := newProvider(t)
	startLang, startDir := p.Language(), p.Direction()

	assert.Equal(t, domain.LangEnglish, p.Toggle())
	assert.Equal(t, i18n.LTR, p.Direction())
	assert.Equal(t, domain.LangArabic, p.Toggle())

	assert.Equal(t, startLang, p.Language())
	assert.Equal(t, startDir, p.Direction())
}

func TestProvider_SubscribersNotifiedOnChange(t *testing.T) {
	p := newProvider(t)

	var order []string
	var seen []domain.Lang
	p.Subscribe(func(l domain.Lang) { order = append(order, "first"); seen = append(seen, l) })
	unsub := p.Subscribe(func(domain.Lang) { order = append(order, "second") })

	require.NoError(t, p.SetLanguage(domain.LangEnglish))
	// same value: no notification
	require.NoError(t, p.SetLanguage(domain.LangEnglish))
	assert.Equal(t, []string{"first", "second"}, order)

	unsub()
	unsub()
	p.Toggle()
	assert.Equal(t, []string{"first", "second", "first"}, order)
	assert.Equal(t, []domain.Lang{domain.LangEnglish, domain.LangArabic}, seen)
}

func TestProvider_ListenerMayReadState(t *testing.T) {
	p := newProvider(t)
	var got string
	p.Subscribe(func(domain.Lang) { got = p.T(i18n.KeyTabsProperties) })

	p.Toggle()
	assert.Equal(t, "Properties", got)
}

func TestFromContext(t *testing.T) {
	_, err := i18n.FromContext(context.Background())
	assert.ErrorIs(t, err, i18n.ErrNoProvider)

	assert.PanicsWithError(t, i18n.ErrNoProvider.Error(), func() {
		i18n.MustFromContext(context.Background())
	})

	p := newProvider(t)
	ctx := i18n.WithProvider(context.Background(), p)
	got, err := i18n.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Same(t, p, i18n.MustFromContext(ctx))
}
