package catalog

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Zebra Tee", Price: decimal.NewFromInt(25), Category: "Tops", Description: "Striped cotton",
			Sizes: []string{"S", "M"}, Colors: []string{"black", "white"}, Featured: true},
		{ID: "2", Name: "apple Jacket", Price: decimal.NewFromInt(120), Category: "Outerwear", Description: "Warm wool",
			Sizes: []string{"M", "L"}, Colors: []string{"green"}, New: true},
		{ID: "3", Name: "Élan Dress", Price: decimal.NewFromInt(80), Category: "Dresses", Description: "Silk evening dress",
			Sizes: []string{"XS", "S"}, Colors: []string{"red", "black"}, Featured: true, New: true},
		{ID: "4", Name: "Basic Tee", Price: decimal.NewFromInt(25), Category: "Tops", Description: "Everyday cotton",
			Sizes: []string{"L"}, Colors: []string{"white"}},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)

	return &d
}

func TestFilter_AllCategoryAndEmptyQueryKeepEverything(t *testing.T) {
	products := testProducts()

	got := Filter(products, entity.FilterState{Category: entity.AllCategories})

	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.FilterState
		want   []string
	}{
		{
			name:   "category",
			filter: entity.FilterState{Category: "Tops"},
			want:   []string{"1", "4"},
		},
		{
			name:   "query matches description case-insensitively",
			filter: entity.FilterState{Query: "COTTON"},
			want:   []string{"1", "4"},
		},
		{
			name:   "query matches name",
			filter: entity.FilterState{Query: "jacket"},
			want:   []string{"2"},
		},
		{
			name:   "query without match",
			filter: entity.FilterState{Query: "nothing like this"},
			want:   []string{},
		},
		{
			name:   "inclusive price bounds",
			filter: entity.FilterState{MinPrice: decimalPtr(25), MaxPrice: decimalPtr(80)},
			want:   []string{"1", "3", "4"},
		},
		{
			name:   "any of colors",
			filter: entity.FilterState{Colors: []string{"green", "red"}},
			want:   []string{"2", "3"},
		},
		{
			name:   "any of sizes",
			filter: entity.FilterState{Sizes: []string{"XS", "L"}},
			want:   []string{"2", "3", "4"},
		},
		{
			name:   "predicates combine",
			filter: entity.FilterState{Category: "Tops", Colors: []string{"black"}},
			want:   []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testProducts(), tt.filter)

			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Sorts(t *testing.T) {
	tests := []struct {
		sort entity.SortKey
		want []string
	}{
		{sort: entity.SortFeatured, want: []string{"1", "3", "2", "4"}},
		{sort: entity.SortNewest, want: []string{"2", "3", "1", "4"}},
		{sort: entity.SortPriceLow, want: []string{"1", "4", "3", "2"}},
		{sort: entity.SortPriceHigh, want: []string{"2", "3", "1", "4"}},
		{sort: entity.SortName, want: []string{"2", "4", "3", "1"}},
		{sort: "bogus", want: []string{"1", "3", "2", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := Filter(testProducts(), entity.FilterState{Sort: tt.sort})

			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_PriceSortsAreReversedExceptTies(t *testing.T) {
	low := Filter(testProducts(), entity.FilterState{Sort: entity.SortPriceLow})
	high := Filter(testProducts(), entity.FilterState{Sort: entity.SortPriceHigh})

	require.Len(t, high, len(low))
	for i := range low {
		mirrored := high[len(high)-1-i]
		assert.True(t, low[i].Price.Equal(mirrored.Price))
	}
}

func TestFilter_DoesNotReorderInput(t *testing.T) {
	products := testProducts()

	_ = Filter(products, entity.FilterState{Sort: entity.SortPriceHigh})

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(products))
}

func TestFeaturedAndNewArrivals(t *testing.T) {
	products := testProducts()

	assert.Equal(t, []string{"1", "3"}, ids(Featured(products, HomeFeaturedCount)))
	assert.Equal(t, []string{"1"}, ids(Featured(products, 1)))
	assert.Equal(t, []string{"2", "3"}, ids(NewArrivals(products, HomeNewCount)))
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct(testProducts(), "3")
	require.True(t, ok)
	assert.Equal(t, "Élan Dress", p.Name)

	_, ok = FindProduct(testProducts(), "99")
	assert.False(t, ok)
}

func TestFilterPosts(t *testing.T) {
	posts := []entity.BlogPost{
		{ID: "1", Title: "Spring Trends", Excerpt: "Bold colors", Category: "Fashion Trends"},
		{ID: "2", Title: "Organic Cotton", Excerpt: "Why materials matter", Category: "Sustainability"},
		{ID: "3", Title: "Our Story", Excerpt: "Founded on trends we love", Category: "Brand Story"},
	}

	got := FilterPosts(posts, "trends", entity.AllCategories)
	assert.Len(t, got, 2)

	got = FilterPosts(posts, "trends", "Brand Story")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Empty(t, FilterPosts(posts, "zzz", ""))
}

func TestFacets(t *testing.T) {
	f := Facets(testProducts())

	assert.Equal(t, []string{"All", "Tops", "Outerwear", "Dresses"}, f.Categories)
	assert.Equal(t, []string{"black", "white", "green", "red"}, f.Colors)
	assert.Equal(t, []string{"S", "M", "L", "XS"}, f.Sizes)
	assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, f.MaxPrice.Equal(decimal.NewFromInt(120)))

	empty := Facets(nil)
	assert.Equal(t, []string{"All"}, empty.Categories)
	assert.True(t, empty.MaxPrice.IsZero())
}
