package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"alfakhama_rentals/internal/domain"
)

// Direction is the HTML dir attribute value for a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

func DirectionOf(l domain.Lang) Direction {
	if l == domain.LangArabic {
		return RTL
	}
	return LTR
}

// MatchLang maps a loosely written language value ("en-US", "AR") to a
// supported Lang.
func MatchLang(s string) (domain.Lang, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return "", false
	}
	l, err := domain.ParseLang(base.String())
	if err != nil {
		return "", false
	}
	return l, true
}
