package domain

import (
	"errors"
	"fmt"
)

// Lang is a UI language code.
type Lang string

const (
	LangArabic  Lang = "ar"
	LangEnglish Lang = "en"

	DefaultLang = LangArabic
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Langs lists every supported language, default first.
func Langs() []Lang { return []Lang{LangArabic, LangEnglish} }

// ParseLang accepts exactly "ar" or "en".
func ParseLang(s string) (Lang, error) {
	switch l := Lang(s); l {
	case LangArabic, LangEnglish:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

func (l Lang) Valid() bool { return l == LangArabic || l == LangEnglish }

// Other returns the language the UI toggle switches to.
func (l Lang) Other() Lang {
	if l == LangEnglish {
		return LangArabic
	}
	return LangEnglish
}

func (l Lang) String() string { return string(l) }
