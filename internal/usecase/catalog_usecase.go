// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductDetail is a product with the values a quick view derives from it.
type ProductDetail struct {
	Product         entity.Product
	DiscountPercent int
	MaxQuantity     int
}

// CatalogUsecase serves the read-only catalog through the filter and sort pipeline.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.FilterState) []entity.Product
	Facets(ctx context.Context) entity.Facets
	Featured(ctx context.Context) []entity.Product
	NewArrivals(ctx context.Context) []entity.Product
	GetProduct(ctx context.Context, productID string) (*ProductDetail, error)
	ProductQR(ctx context.Context, productID string) ([]byte, error)

	ListPosts(ctx context.Context, query, category string) []entity.BlogPost
	BlogCategories(ctx context.Context) []string
}
