package repository

import "storefront/internal/domain/entity"

// CatalogRepository exposes the static product and blog catalogs.
// Returned slices are shared and must not be modified by callers.
type CatalogRepository interface {
	Products() []entity.Product
	Posts() []entity.BlogPost
}
