package catalog

import (
	"sync"

	domain "github.com/example/matcha-store/domain/catalog"
)

// featuredCount is how many leading catalog products appear in the home
// page's featured grid.
const featuredCount = 4

// Repository holds the immutable product catalog in insertion order.
type Repository struct {
	products []domain.Product
	byID     map[int]domain.Product
	mu       sync.RWMutex
}

// NewRepository creates an empty catalog repository.
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[int]domain.Product),
	}
}

// SeedCatalog loads the storefront's product range. Called once at
// module start; the catalog never changes afterwards.
func (r *Repository) SeedCatalog() {
	r.mu.Lock()
	defer r.mu.Unlock()

	seed := []domain.Product{
		{ID: 1, Name: "Ceremonial Grade Matcha", Price: 350000, Category: "Powder", Image: "https://i.pinimg.com/1200x/87/4c/de/874cdee6180e7b89770a44ecfaedc564.jpg"},
		{ID: 2, Name: "Iced Matcha Latte Kit", Price: 450000, Category: "Kits", Image: "https://i.pinimg.com/1200x/c1/5b/5a/c15b5a19fb93ebbf1cc147b1516aa6da.jpg"},
		{ID: 3, Name: "Bamboo Whisk (Chasen)", Price: 180000, Category: "Accessories", Image: "https://i.pinimg.com/1200x/2a/d5/7b/2ad57bce81529ce11c525ad3ba30710c.jpg"},
		{ID: 4, Name: "Hojicha Roasted Green Tea", Price: 280000, Category: "Powder", Image: "https://i.pinimg.com/1200x/01/ab/36/01ab36be4852c199941c47439fdbfb5e.jpg"},
		{ID: 5, Name: "Matcha Bowl (Chawan)", Price: 250000, Category: "Accessories", Image: "https://i.pinimg.com/1200x/8d/63/53/8d63538a556bd2b83673f28fbed10380.jpg"},
		{ID: 6, Name: "Genmaicha Brown Rice Tea", Price: 220000, Category: "Tea Bags", Image: "https://i.pinimg.com/1200x/54/5c/9b/545c9ba4c774dce9b58e40b81cfbeef7.jpg"},
		{ID: 7, Name: "Starter Matcha Kit", Price: 750000, Category: "Kits", Image: "https://i.pinimg.com/736x/22/6a/cc/226accf69e3a1e289c346bd67d81b3cb.jpg"},
		{ID: 8, Name: "Culinary Grade Matcha", Price: 200000, Category: "Powder", Image: "https://i.pinimg.com/1200x/ab/4a/e5/ab4ae58febbddfcc24a2539740847ae0.jpg"},
	}

	r.products = seed
	for _, p := range seed {
		r.byID[p.ID] = p
	}
}

// FindByID finds a product by id.
func (r *Repository) FindByID(productID int) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, found := r.byID[productID]
	if !found {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Query returns the products matching the filter, preserving catalog
// insertion order (stable filter, no re-sort).
func (r *Repository) Query(filter domain.Filter) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// Featured returns the leading products shown on the home page.
func (r *Repository) Featured() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := featuredCount
	if n > len(r.products) {
		n = len(r.products)
	}
	result := make([]domain.Product, n)
	copy(result, r.products[:n])
	return result
}

// Categories returns "all" followed by the distinct product categories
// in first-appearance order.
func (r *Repository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	result := []string{domain.CategoryAll}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			result = append(result, p.Category)
		}
	}
	return result
}
