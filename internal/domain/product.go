package domain

import "strings"

// Variant tags a product with its merchandise line. It is a pure function
// of the category string and is never persisted on its own; loaders must
// re-derive it with VariantForCategory.
type Variant string

const (
	VariantSneaker    Variant = "Sneaker"
	VariantWatch      Variant = "Watch"
	VariantStreetwear Variant = "Streetwear"
	VariantGeneric    Variant = "Generic"
)

// VariantForCategory maps a category name to its variant tag. Matching is
// case-insensitive; unknown categories are Generic.
func VariantForCategory(category string) Variant {
	switch {
	case strings.EqualFold(category, "Sneakers"):
		return VariantSneaker
	case strings.EqualFold(category, "Watches"):
		return VariantWatch
	case strings.EqualFold(category, "Streetwear"):
		return VariantStreetwear
	default:
		return VariantGeneric
	}
}

// Product represents a catalog item
type Product struct {
	ID       int
	Name     string `validate:"required"`
	Brand    string
	Category string
	Stock    int     `validate:"gte=0"`
	Price    float64 `validate:"gte=0"`
	Barcode  string
	Variant  Variant
}

// Retag re-derives the variant tag from the current category.
func (p *Product) Retag() {
	p.Variant = VariantForCategory(p.Category)
}
