// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// DefaultMaxOrderQuantity caps quantity pickers when a product carries no stock count.
const DefaultMaxOrderQuantity = 100

// Product is one catalog record. Products are read-only for the life of the process.
type Product struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	Price         decimal.Decimal   `json:"price" yaml:"price"`
	OriginalPrice *decimal.Decimal  `json:"originalPrice,omitempty" yaml:"originalPrice"`
	Image         string            `json:"image" yaml:"image"`
	Category      string            `json:"category" yaml:"category"`
	Description   string            `json:"description" yaml:"description"`
	Sizes         []string          `json:"sizes" yaml:"sizes"`
	Colors        []string          `json:"colors" yaml:"colors"`
	ColorImages   map[string]string `json:"colorImages,omitempty" yaml:"colorImages"`
	InStock       bool              `json:"inStock" yaml:"inStock"`
	Stock         *int              `json:"stock,omitempty" yaml:"stock"`
	Featured      bool              `json:"featured,omitempty" yaml:"featured"`
	New           bool              `json:"new,omitempty" yaml:"new"`
	Sale          bool              `json:"sale,omitempty" yaml:"sale"`
	Rating        *float64          `json:"rating,omitempty" yaml:"rating"`
	Reviews       *int              `json:"reviews,omitempty" yaml:"reviews"`
}

// DiscountPercent returns the rounded markdown from OriginalPrice, or 0 when there is none.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || !p.OriginalPrice.IsPositive() {
		return 0
	}

	pct := p.OriginalPrice.Sub(p.Price).Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(0)

	return int(pct.IntPart())
}

// ImageFor returns the per-color image override, falling back to the main image.
func (p *Product) ImageFor(color string) string {
	if img, ok := p.ColorImages[color]; ok && img != "" {
		return img
	}

	return p.Image
}

// MaxOrderQuantity is the upper bound offered by quantity controls.
func (p *Product) MaxOrderQuantity() int {
	if p.Stock == nil || *p.Stock <= 0 {
		return DefaultMaxOrderQuantity
	}

	return *p.Stock
}

// HasSize reports whether size is one of the product's sizes.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

// HasColor reports whether color is one of the product's colors.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}

	return false
}
