package cart

import (
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Pricing holds the shipping step function and the flat tax rate.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal // Shipping is free strictly above this subtotal.
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal // Applied to the subtotal only.
}

// DefaultPricing is free shipping over 100, otherwise 10, and 8% tax.
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(100),
		ShippingFee:           decimal.NewFromInt(10),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// ParsePricing overrides the defaults with decimal strings; blank values keep the default.
func ParsePricing(freeShippingThreshold, shippingFee, taxRate string) (Pricing, error) {
	p := DefaultPricing()

	fields := []struct {
		raw  string
		dst  *decimal.Decimal
		name string
	}{
		{freeShippingThreshold, &p.FreeShippingThreshold, "freeShippingThreshold"},
		{shippingFee, &p.ShippingFee, "shippingFee"},
		{taxRate, &p.TaxRate, "taxRate"},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return Pricing{}, errors.Wrapf(err, "invalid pricing.%s", f.name)
		}
		if v.IsNegative() {
			return Pricing{}, errors.Errorf("pricing.%s must not be negative", f.name)
		}
		*f.dst = v
	}

	return p, nil
}

// Summarize derives the order summary from scratch. An empty cart is all zeros
// however it became empty, so removing the last line charges no shipping fee.
func (p Pricing) Summarize(lines []entity.CartLineItem) entity.OrderSummary {
	if len(lines) == 0 {
		return entity.OrderSummary{
			Subtotal: decimal.Zero,
			Shipping: decimal.Zero,
			Tax:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	for i := range lines {
		subtotal = subtotal.Add(lines[i].LineTotal())
	}

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate)

	return entity.OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
