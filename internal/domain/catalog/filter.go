// Package catalog narrows and orders the static product and blog catalogs.
// Every function here is pure and returns a new slice; inputs are never reordered.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"storefront/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Home page section sizes.
const (
	HomeFeaturedCount = 4
	HomeNewCount      = 3
)

// Filter applies the predicates of f in order and then sorts the survivors.
func Filter(products []entity.Product, f entity.FilterState) []entity.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]entity.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if !matchCategory(p.Category, f.Category) ||
			!matchQuery(query, p.Name, p.Description) ||
			!matchPrice(p, f) ||
			!anyOf(f.Colors, p.Colors) ||
			!anyOf(f.Sizes, p.Sizes) {
			continue
		}
		out = append(out, *p)
	}

	sortProducts(out, f.Sort)

	return out
}

// FilterPosts keeps posts whose title or excerpt contains query and whose category matches.
func FilterPosts(posts []entity.BlogPost, query, category string) []entity.BlogPost {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entity.BlogPost, 0, len(posts))
	for _, post := range posts {
		if matchQuery(q, post.Title, post.Excerpt) && matchCategory(post.Category, category) {
			out = append(out, post)
		}
	}

	return out
}

// Featured returns up to n featured products in catalog order.
func Featured(products []entity.Product, n int) []entity.Product {
	return firstN(products, n, func(p *entity.Product) bool { return p.Featured })
}

// NewArrivals returns up to n new products in catalog order.
func NewArrivals(products []entity.Product, n int) []entity.Product {
	return firstN(products, n, func(p *entity.Product) bool { return p.New })
}

// FindProduct looks a product up by id.
func FindProduct(products []entity.Product, id string) (entity.Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return products[i], true
		}
	}

	return entity.Product{}, false
}

func firstN(products []entity.Product, n int, keep func(*entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, n)
	for i := range products {
		if len(out) >= n {
			break
		}
		if keep(&products[i]) {
			out = append(out, products[i])
		}
	}

	return out
}

func matchCategory(category, want string) bool {
	if want == "" || want == entity.AllCategories {
		return true
	}

	return category == want
}

// matchQuery expects q already lower-cased.
func matchQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}

	return false
}

func matchPrice(p *entity.Product, f entity.FilterState) bool {
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}

	return true
}

// anyOf is true when wanted is empty or shares at least one value with have.
func anyOf(wanted, have []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if slices.Contains(have, w) {
			return true
		}
	}

	return false
}

func sortProducts(products []entity.Product, key entity.SortKey) {
	switch entity.ParseSortKey(string(key)) {
	case entity.SortPriceLow:
		slices.SortStableFunc(products, func(a, b entity.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case entity.SortPriceHigh:
		slices.SortStableFunc(products, func(a, b entity.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case entity.SortName:
		// A Collator is not safe for concurrent use.
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(products, func(a, b entity.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	case entity.SortNewest:
		slices.SortStableFunc(products, func(a, b entity.Product) int {
			return flagFirst(a.New, b.New)
		})
	default:
		slices.SortStableFunc(products, func(a, b entity.Product) int {
			return flagFirst(a.Featured, b.Featured)
		})
	}
}

func flagFirst(a, b bool) int {
	return cmp.Compare(boolRank(b), boolRank(a))
}

func boolRank(v bool) int {
	if v {
		return 1
	}

	return 0
}
