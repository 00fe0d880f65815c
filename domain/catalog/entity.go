package catalog

import "strings"

// CategoryAll is the filter category that matches every product.
const CategoryAll = "all"

// Product is an immutable catalog entry. Price is a whole-rupiah amount;
// the currency carries no minor units.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Filter narrows a catalog query. An empty SearchTerm matches every name
// and CategoryAll matches every category.
type Filter struct {
	SearchTerm string `json:"search_term"`
	Category   string `json:"category"`
}

// DefaultFilter is the filter state applied whenever the shop view is
// (re)entered: no search term, all categories.
func DefaultFilter() Filter {
	return Filter{Category: CategoryAll}
}

// Matches reports whether p satisfies the filter. The name match is a
// case-insensitive substring test.
func (f Filter) Matches(p Product) bool {
	if f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchTerm))
}
