package catalog

import (
	"context"

	domain "github.com/example/matcha-store/domain/catalog"
)

// GetProductRequest is the request for looking up a product by id.
type GetProductRequest struct {
	ProductID int `json:"product_id"`
}

// GetProductResponse is the response for a product lookup.
type GetProductResponse struct {
	Product *domain.Product `json:"product,omitempty"`
	Found   bool            `json:"found"`
}

// QueryProductsRequest is the request for a filtered product query.
type QueryProductsRequest struct {
	SearchTerm string `json:"search_term,omitempty"`
	Category   string `json:"category,omitempty"`
}

// ProductsResponse is the response for product listing queries.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ListFeaturedRequest is the request for the home page's featured grid.
type ListFeaturedRequest struct{}

// ListCategoriesRequest is the request for the category filter buttons.
type ListCategoriesRequest struct{}

// ListCategoriesResponse is the response for listing categories.
type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CatalogPort defines the interface for catalog queries (hexagonal
// port). The catalog is read-only; none of these operations mutate.
type CatalogPort interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	QueryProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
