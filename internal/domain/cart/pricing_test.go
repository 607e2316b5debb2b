package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linesWithSubtotal(subtotal string) []entity.CartLineItem {
	return []entity.CartLineItem{{
		ID:       "p-M-black",
		Product:  product("p", subtotal),
		Quantity: 1,
		Size:     "M",
		Color:    "black",
	}}
}

func TestPricing_ShippingBoundary(t *testing.T) {
	p := DefaultPricing()

	tests := []struct {
		subtotal string
		shipping string
	}{
		{subtotal: "99.99", shipping: "10"},
		{subtotal: "100.00", shipping: "10"},
		{subtotal: "100.01", shipping: "0"},
		{subtotal: "250", shipping: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			summary := p.Summarize(linesWithSubtotal(tt.subtotal))

			assert.True(t, summary.Shipping.Equal(decimal.RequireFromString(tt.shipping)),
				"shipping = %s", summary.Shipping)
		})
	}
}

func TestPricing_TaxOnSubtotalOnly(t *testing.T) {
	summary := DefaultPricing().Summarize(linesWithSubtotal("50"))

	assert.True(t, summary.Tax.Equal(decimal.NewFromInt(4)))
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(64)))
}

func TestPricing_EmptyCartIsZero(t *testing.T) {
	summary := DefaultPricing().Summarize(nil)

	assert.True(t, summary.Shipping.IsZero())
	assert.True(t, summary.Total.IsZero())
}

func TestParsePricing(t *testing.T) {
	p, err := ParsePricing("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPricing(), p)

	p, err = ParsePricing("50", "5.5", "0.2")
	require.NoError(t, err)
	assert.True(t, p.FreeShippingThreshold.Equal(decimal.NewFromInt(50)))
	assert.True(t, p.ShippingFee.Equal(decimal.RequireFromString("5.5")))
	assert.True(t, p.TaxRate.Equal(decimal.RequireFromString("0.2")))

	_, err = ParsePricing("abc", "", "")
	assert.Error(t, err)

	_, err = ParsePricing("", "-1", "")
	assert.Error(t, err)
}
