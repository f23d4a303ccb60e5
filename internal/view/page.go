package view

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"alfakhama_rentals/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	heroImage    = "https://images.unsplash.com/photo-1582501367134-98b4893c7294"
	contactPhone = "+966 12 345 6789"
	contactEmail = "info@alfakhama.sa"
)

// Page is the render model for one full page.
type Page struct {
	Lang   domain.Lang
	Layout Layout
	Tab    Tab

	SiteName   string
	NavContact string
	NavAbout   string
	Switch     LanguageSwitch
	Hero       Hero
	Tabs       []TabLink
	Cards      []Card
	BookNow    string
	Contact    Contact
	Rights     string
}

// LanguageSwitch is the header toggle; Label is written in the target language.
type LanguageSwitch struct {
	Label string
	Lang  domain.Lang
}

// Hero carries the banner copy. The search field it labels is inert.
type Hero struct {
	Title             string
	Subtitle          string
	SearchPlaceholder string
	Image             string
}

type TabLink struct {
	ID     Tab
	Label  string
	Icon   string
	Active bool
}

// Card is one listing tile. Property cards carry a location and bedrooms.
type Card struct {
	Kind      Tab
	ID        int
	Name      string
	Detail    string
	Image     string
	Price     int
	PriceUnit string

	Property      bool
	Bedrooms      int
	BedroomsLabel string
}

type Contact struct {
	Title string
	Phone string
	Email string
}

// Component renders the page as HTML.
func (p Page) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pageTemplate.ExecuteTemplate(w, "page.html", p)
	})
}
