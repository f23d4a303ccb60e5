package domain

// LocalizedString carries the Arabic and English rendering of one text.
type LocalizedString struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In selects the rendering for lang. Unknown codes yield "" (no fallback).
func (s LocalizedString) In(lang Lang) string {
	switch lang {
	case LangArabic:
		return s.AR
	case LangEnglish:
		return s.EN
	}
	return ""
}

type Vehicle struct {
	ID    int
	Name  LocalizedString
	Price int // SAR per day
	Image string
	Type  LocalizedString
}

type Property struct {
	ID       int
	Name     LocalizedString
	Price    int // SAR per month
	Location LocalizedString
	Bedrooms int
	Image    string
}
