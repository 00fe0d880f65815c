package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/matcha-store/domain/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CatalogModule serves the read-only product catalog.
type CatalogModule struct {
	repo *Repository
}

// Compile-time interface checks.
var _ mono.Module = (*CatalogModule)(nil)
var _ mono.ServiceProviderModule = (*CatalogModule)(nil)

// NewModule creates a new CatalogModule.
func NewModule() *CatalogModule {
	return &CatalogModule{
		repo: NewRepository(),
	}
}

// Name returns the module name.
func (m *CatalogModule) Name() string {
	return "catalog"
}

// RegisterServices registers request-reply services in the service
// container. This implements the ServiceProviderModule interface.
func (m *CatalogModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-product", json.Unmarshal, json.Marshal, m.getProduct,
	); err != nil {
		return fmt.Errorf("failed to register get-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "query-products", json.Unmarshal, json.Marshal, m.queryProducts,
	); err != nil {
		return fmt.Errorf("failed to register query-products service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-featured", json.Unmarshal, json.Marshal, m.listFeatured,
	); err != nil {
		return fmt.Errorf("failed to register list-featured service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-categories", json.Unmarshal, json.Marshal, m.listCategories,
	); err != nil {
		return fmt.Errorf("failed to register list-categories service: %w", err)
	}

	log.Printf("[catalog] Registered services: get-product, query-products, list-featured, list-categories")
	return nil
}

// getProduct handles the get-product service request.
func (m *CatalogModule) getProduct(_ context.Context, req GetProductRequest, _ *mono.Msg) (GetProductResponse, error) {
	p, err := m.repo.FindByID(req.ProductID)
	if err != nil {
		return GetProductResponse{Found: false}, nil
	}
	return GetProductResponse{Product: &p, Found: true}, nil
}

// queryProducts handles the query-products service request.
func (m *CatalogModule) queryProducts(_ context.Context, req QueryProductsRequest, _ *mono.Msg) (ProductsResponse, error) {
	filter := domain.Filter{
		SearchTerm: req.SearchTerm,
		Category:   req.Category,
	}
	if filter.Category == "" {
		filter.Category = domain.CategoryAll
	}

	products := m.repo.Query(filter)
	return ProductsResponse{Products: products, Total: len(products)}, nil
}

// listFeatured handles the list-featured service request.
func (m *CatalogModule) listFeatured(_ context.Context, _ ListFeaturedRequest, _ *mono.Msg) (ProductsResponse, error) {
	products := m.repo.Featured()
	return ProductsResponse{Products: products, Total: len(products)}, nil
}

// listCategories handles the list-categories service request.
func (m *CatalogModule) listCategories(_ context.Context, _ ListCategoriesRequest, _ *mono.Msg) (ListCategoriesResponse, error) {
	return ListCategoriesResponse{Categories: m.repo.Categories()}, nil
}

// Start seeds the catalog.
func (m *CatalogModule) Start(_ context.Context) error {
	m.repo.SeedCatalog()
	log.Println("[catalog] Module started with seeded products")
	return nil
}

// Stop shuts down the module.
func (m *CatalogModule) Stop(_ context.Context) error {
	log.Println("[catalog] Module stopped")
	return nil
}
