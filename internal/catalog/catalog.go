// Package catalog holds the fixed vehicle and property listings.
package catalog

import (
	"slices"

	"alfakhama_rentals/internal/domain"
)

var vehicles = []domain.Vehicle{
	{
		ID:    1,
		Name:  domain.LocalizedString{AR: "مرسيدس بنز S-Class 2024", EN: "Mercedes-Benz S-Class 2024"},
		Price: 1200,
		Image: "https://images.unsplash.com/photo-1622200984485-a229f857c05c",
		Type:  domain.LocalizedString{AR: "فاخرة", EN: "Luxury"},
	},
	{
		ID:    2,
		Name:  domain.LocalizedString{AR: "بي إم دبليو X7 2024", EN: "BMW X7 2024"},
		Price: 1000,
		Image: "https://images.unsplash.com/photo-1607853202273-797f1c22a38e",
		Type:  domain.LocalizedString{AR: "دفع رباعي", EN: "SUV"},
	},
	{
		ID:    3,
		Name:  domain.LocalizedString{AR: "لكزس ES 2024", EN: "Lexus ES 2024"},
		Price: 800,
		Image: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb",
		Type:  domain.LocalizedString{AR: "سيدان", EN: "Sedan"},
	},
}

var properties = []domain.Property{
	{
		ID:       1,
		Name:     domain.LocalizedString{AR: "فيلا فاخرة في الرياض", EN: "Luxury Villa in Riyadh"},
		Price:    15000,
		Location: domain.LocalizedString{AR: "حي السفارات، الرياض", EN: "Diplomatic Quarter, Riyadh"},
		Bedrooms: 5,
		Image:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811",
	},
	{
		ID:       2,
		Name:     domain.LocalizedString{AR: "شقة حديثة في جدة", EN: "Modern Apartment in Jeddah"},
		Price:    8000,
		Location: domain.LocalizedString{AR: "الشاطئ، جدة", EN: "Al Shati, Jeddah"},
		Bedrooms: 3,
		Image:    "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00",
	},
	{
		ID:       3,
		Name:     domain.LocalizedString{AR: "بنتهاوس في الخُبر", EN: "Penthouse in Khobar"},
		Price:    12000,
		Location: domain.LocalizedString{AR: "الكورنيش، الخبر", EN: "Corniche, Khobar"},
		Bedrooms: 4,
		Image:    "https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd",
	},
}

// Static serves the built-in listings. The zero value is ready to use.
type Static struct{}

func New() Static { return Static{} }

// Vehicles returns a copy so callers cannot mutate the shared literals.
func (Static) Vehicles() []domain.Vehicle { return slices.Clone(vehicles) }

func (Static) Properties() []domain.Property { return slices.Clone(properties) }
