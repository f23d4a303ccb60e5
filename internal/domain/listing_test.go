package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfakhama_rentals/internal/domain"
)

func TestLocalizedString_In(t *testing.T) {
	s := domain.LocalizedString{AR: "سيدان", EN: "Sedan"}

	assert.Equal(t, "سيدان", s.In(domain.LangArabic))
	assert.Equal(t, "Sedan", s.In(domain.LangEnglish))
	// no fallback at this layer: unknown codes render blank
	assert.Empty(t, s.In(domain.Lang("fr")))
}

func TestParseLang(t *testing.T) {
	for _, in := range []string{"ar", "en"} {
		l, err := domain.ParseLang(in)
		require.NoError(t, err)
		assert.Equal(t, in, l.String())
	}

	for _, in := range []string{"", "fr", "AR", "en-US"} {
		_, err := domain.ParseLang(in)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage), "input %q", in)
	}
}

func TestLang_Other(t *testing.T) {
	assert.Equal(t, domain.LangEnglish, domain.LangArabic.Other())
	assert.Equal(t, domain.LangArabic, domain.LangEnglish.Other())
	assert.Equal(t, domain.LangArabic, domain.LangArabic.Other().Other())
}
