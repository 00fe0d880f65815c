package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/matcha-store/domain/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// catalogAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements CatalogPort.
type catalogAdapter struct {
	container mono.ServiceContainer
}

// NewCatalogAdapter creates a new adapter for catalog services.
// container is the ServiceContainer from the catalog module received via
// SetDependencyServiceContainer.
func NewCatalogAdapter(container mono.ServiceContainer) CatalogPort {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &catalogAdapter{container: container}
}

// GetProduct retrieves a product by id via the get-product service.
func (a *catalogAdapter) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	req := GetProductRequest{ProductID: productID}
	var resp GetProductResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-product",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-product service call failed: %w", err)
	}
	if !resp.Found {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}
	return resp.Product, nil
}

// QueryProducts runs a filtered catalog query via the query-products
// service.
func (a *catalogAdapter) QueryProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	req := QueryProductsRequest{
		SearchTerm: filter.SearchTerm,
		Category:   filter.Category,
	}
	var resp ProductsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"query-products",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("query-products service call failed: %w", err)
	}
	return resp.Products, nil
}

// ListFeatured retrieves the home page's featured products via the
// list-featured service.
func (a *catalogAdapter) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	req := ListFeaturedRequest{}
	var resp ProductsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-featured",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-featured service call failed: %w", err)
	}
	return resp.Products, nil
}

// ListCategories retrieves the category filter values via the
// list-categories service.
func (a *catalogAdapter) ListCategories(ctx context.Context) ([]string, error) {
	req := ListCategoriesRequest{}
	var resp ListCategoriesResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-categories",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-categories service call failed: %w", err)
	}
	return resp.Categories, nil
}
