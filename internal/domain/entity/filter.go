package entity

import "github.com/shopspring/decimal"

// SortKey selects one of the catalog orderings.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// AllCategories disables the category predicate.
const AllCategories = "All"

// ParseSortKey maps a raw value to a SortKey, defaulting to featured.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortNewest, SortPriceLow, SortPriceHigh, SortName:
		return SortKey(raw)
	default:
		return SortFeatured
	}
}

// FilterState is the user's current narrowing and ordering of the catalog.
// Nil price bounds are unbounded; both bounds are inclusive.
type FilterState struct {
	Category string
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Colors   []string
	Sizes    []string
	Sort     SortKey
}

// Facets lists the values a filter UI can offer for the catalog.
type Facets struct {
	Categories []string        `json:"categories"`
	Colors     []string        `json:"colors"`
	Sizes      []string        `json:"sizes"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	MaxPrice   decimal.Decimal `json:"maxPrice"`
}
