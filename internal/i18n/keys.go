package i18n

// Key names a UI string in the translation table.
type Key string

const (
	KeySiteName       Key = "site.name"
	KeyNavContact     Key = "nav.contact"
	KeyNavAbout       Key = "nav.about"
	KeyHeroTitle      Key = "hero.title"
	KeyHeroSubtitle   Key = "hero.subtitle"
	KeyHeroSearch     Key = "hero.search"
	KeyTabsCars       Key = "tabs.cars"
	KeyTabsProperties Key = "tabs.properties"
	KeyCarTypeLuxury  Key = "car.type.luxury"
	KeyCarTypeSUV     Key = "car.type.suv"
	KeyCarTypeSedan   Key = "car.type.sedan"
	KeyCarPricePerDay Key = "car.price.perDay"
	KeyPricePerMonth  Key = "property.price.perMonth"
	KeyBedrooms       Key = "property.bedrooms"
	KeyBookNow        Key = "button.bookNow"
	KeyContactTitle   Key = "contact.title"
	KeyFooterRights   Key = "footer.rights"
	KeyLanguageSwitch Key = "language.switch"
	KeyErrInvalidLang Key = "error.invalidLanguage"
	KeyErrInvalidTab  Key = "error.invalidTab"
	KeyErrRender      Key = "error.render"
	KeyErrRateLimit   Key = "error.rateLimit"
)

// Keys returns every key the table must define for each language.
func Keys() []Key {
	return []Key{
		KeySiteName, KeyNavContact, KeyNavAbout,
		KeyHeroTitle, KeyHeroSubtitle, KeyHeroSearch,
		KeyTabsCars, KeyTabsProperties,
		KeyCarTypeLuxury, KeyCarTypeSUV, KeyCarTypeSedan,
		KeyCarPricePerDay, KeyPricePerMonth, KeyBedrooms,
		KeyBookNow, KeyContactTitle, KeyFooterRights,
		KeyLanguageSwitch,
		KeyErrInvalidLang, KeyErrInvalidTab, KeyErrRender, KeyErrRateLimit,
	}
}
