package catalog

import (
	"errors"
	"testing"

	domain "github.com/example/matcha-store/domain/catalog"
)

func seededRepository(t *testing.T) *Repository {
	t.Helper()
	repo := NewRepository()
	repo.SeedCatalog()
	return repo
}

func TestRepository_Seed(t *testing.T) {
	repo := seededRepository(t)

	products := repo.Query(domain.DefaultFilter())
	if len(products) != 8 {
		t.Fatalf("seeded catalog size = %d, want 8", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Errorf("products[%d].ID = %d, want %d (insertion order)", i, p.ID, i+1)
		}
	}
	if products[0].Name != "Ceremonial Grade Matcha" || products[0].Price != 350000 {
		t.Errorf("first product = %+v, want Ceremonial Grade Matcha at 350000", products[0])
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo := seededRepository(t)

	p, err := repo.FindByID(3)
	if err != nil {
		t.Fatalf("FindByID(3) error = %v", err)
	}
	if p.Name != "Bamboo Whisk (Chasen)" {
		t.Errorf("FindByID(3).Name = %q, want Bamboo Whisk (Chasen)", p.Name)
	}

	if _, err := repo.FindByID(99); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("FindByID(99) error = %v, want %v", err, ErrProductNotFound)
	}
}

func TestRepository_Query(t *testing.T) {
	repo := seededRepository(t)

	tests := []struct {
		name    string
		filter  domain.Filter
		wantIDs []int
	}{
		{
			name:    "category only",
			filter:  domain.Filter{Category: "Powder"},
			wantIDs: []int{1, 4, 8},
		},
		{
			name:    "category and search",
			filter:  domain.Filter{SearchTerm: "matcha", Category: "Powder"},
			wantIDs: []int{1, 8},
		},
		{
			name:    "search across categories",
			filter:  domain.Filter{SearchTerm: "kit", Category: domain.CategoryAll},
			wantIDs: []int{2, 7},
		},
		{
			name:    "no matches",
			filter:  domain.Filter{SearchTerm: "oolong", Category: domain.CategoryAll},
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.Query(tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Query() returned %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("Query()[%d].ID = %d, want %d", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestRepository_Featured(t *testing.T) {
	repo := seededRepository(t)

	featured := repo.Featured()
	if len(featured) != 4 {
		t.Fatalf("Featured() returned %d products, want 4", len(featured))
	}
	for i, p := range featured {
		if p.ID != i+1 {
			t.Errorf("featured[%d].ID = %d, want %d (leading catalog slice)", i, p.ID, i+1)
		}
	}
}

func TestRepository_Categories(t *testing.T) {
	repo := seededRepository(t)

	got := repo.Categories()
	want := []string{"all", "Powder", "Kits", "Accessories", "Tea Bags"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
