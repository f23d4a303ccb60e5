package view

import (
	"alfakhama_rentals/internal/domain"
	"alfakhama_rentals/internal/i18n"
)

// Layout holds the direction-dependent presentation classes.
type Layout struct {
	Dir i18n.Direction
	// Align is the text alignment class for the page body.
	Align string
	// Spacing is appended to horizontal space-x groups; RTL reverses them.
	Spacing string
	// IconMargin separates an icon from its label on the reading side.
	IconMargin string
}

func LayoutFor(l domain.Lang) Layout {
	if i18n.DirectionOf(l) == i18n.RTL {
		return Layout{Dir: i18n.RTL, Align: "text-right", Spacing: "space-x-reverse", IconMargin: "ml-2"}
	}
	return Layout{Dir: i18n.LTR, Align: "text-left", IconMargin: "mr-2"}
}
