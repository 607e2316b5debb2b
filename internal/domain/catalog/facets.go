package catalog

import (
	"slices"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BlogCategories is the fixed category list offered by the blog filter.
var BlogCategories = []string{
	entity.AllCategories,
	"Fashion Trends",
	"Sustainability",
	"Collections",
	"Brand Story",
}

// Facets collects the filter options present in the catalog. Colors, sizes and
// categories keep first-seen order; categories always start with "All".
func Facets(products []entity.Product) entity.Facets {
	f := entity.Facets{
		Categories: []string{entity.AllCategories},
		Colors:     []string{},
		Sizes:      []string{},
		MinPrice:   decimal.Zero,
		MaxPrice:   decimal.Zero,
	}

	for i, p := range products {
		if !slices.Contains(f.Categories, p.Category) {
			f.Categories = append(f.Categories, p.Category)
		}
		for _, c := range p.Colors {
			if !slices.Contains(f.Colors, c) {
				f.Colors = append(f.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if !slices.Contains(f.Sizes, s) {
				f.Sizes = append(f.Sizes, s)
			}
		}

		if i == 0 || p.Price.LessThan(f.MinPrice) {
			f.MinPrice = p.Price
		}
		if i == 0 || p.Price.GreaterThan(f.MaxPrice) {
			f.MaxPrice = p.Price
		}
	}

	return f
}
