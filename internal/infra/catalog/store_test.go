package catalog

import (
	"log/slog"
	"strings"
	"testing"

	domaincatalog "storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmbeddedCatalog(t *testing.T) {
	repo, err := New(Params{Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)

	products := repo.Products()
	require.NotEmpty(t, products)
	assert.NotEmpty(t, repo.Posts())

	assert.Len(t, domaincatalog.Featured(products, domaincatalog.HomeFeaturedCount), domaincatalog.HomeFeaturedCount)
	assert.Len(t, domaincatalog.NewArrivals(products, domaincatalog.HomeNewCount), domaincatalog.HomeNewCount)

	for _, post := range repo.Posts() {
		assert.Contains(t, domaincatalog.BlogCategories, post.Category, "post %s", post.ID)
	}
}

func TestLoad_DecodesDecimalsAndOptionalFields(t *testing.T) {
	products := `
products:
  - id: "a"
    name: Tee
    price: "19.90"
    originalPrice: "25"
    image: /a.jpg
    category: Tops
    description: soft
    sizes: [S]
    colors: [Black]
    colorImages:
      Black: /a-black.jpg
    inStock: true
    stock: 3
`
	repo, err := Load(strings.NewReader(products), strings.NewReader("posts: []"))
	require.NoError(t, err)

	require.Len(t, repo.Products(), 1)
	p := repo.Products()[0]
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.9")))
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 20, p.DiscountPercent())
	assert.Equal(t, 3, p.MaxOrderQuantity())
	assert.Equal(t, "/a-black.jpg", p.ImageFor("Black"))
	assert.Nil(t, p.Rating)
}

func TestLoad_RejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name     string
		products string
	}{
		{
			name:     "unknown field",
			products: "products:\n  - id: a\n    colour: red\n",
		},
		{
			name: "duplicate id",
			products: `products:
  - {id: a, price: "1", sizes: [S], colors: [Red]}
  - {id: a, price: "2", sizes: [S], colors: [Red]}
`,
		},
		{
			name:     "negative price",
			products: "products:\n  - {id: a, price: \"-1\", sizes: [S], colors: [Red]}\n",
		},
		{
			name:     "no sizes",
			products: "products:\n  - {id: a, price: \"1\", sizes: [], colors: [Red]}\n",
		},
		{
			name:     "bad decimal",
			products: "products:\n  - {id: a, price: abc, sizes: [S], colors: [Red]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.products), strings.NewReader("posts: []"))
			assert.Error(t, err)
		})
	}
}
