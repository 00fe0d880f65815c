package cart

import (
	"context"
	"testing"

	catalogdomain "github.com/example/matcha-store/domain/catalog"
	"github.com/example/matcha-store/modules/catalog"
)

// mockCatalogPort serves the seeded catalog without going through the
// service container.
type mockCatalogPort struct {
	products map[int]catalogdomain.Product
}

func newMockCatalogPort() *mockCatalogPort {
	return &mockCatalogPort{
		products: map[int]catalogdomain.Product{
			1: {ID: 1, Name: "Ceremonial Grade Matcha", Price: 350000, Category: "Powder"},
			3: {ID: 3, Name: "Bamboo Whisk (Chasen)", Price: 180000, Category: "Accessories"},
		},
	}
}

func (m *mockCatalogPort) GetProduct(_ context.Context, productID int) (*catalogdomain.Product, error) {
	p, found := m.products[productID]
	if !found {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockCatalogPort) QueryProducts(_ context.Context, filter catalogdomain.Filter) ([]catalogdomain.Product, error) {
	var result []catalogdomain.Product
	for _, p := range m.products {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockCatalogPort) ListFeatured(_ context.Context) ([]catalogdomain.Product, error) {
	return nil, nil
}

func (m *mockCatalogPort) ListCategories(_ context.Context) ([]string, error) {
	return []string{"all"}, nil
}

func newTestModule(t *testing.T) *CartModule {
	t.Helper()
	m := NewModule()
	m.catalogPort = newMockCatalogPort()
	return m
}

func TestCartModule_AddItem(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil)
	if err != nil {
		t.Fatalf("addItem() error = %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Quantity != 1 {
		t.Fatalf("cart after first add = %+v, want one line with quantity 1", resp.Lines)
	}

	resp, err = m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil)
	if err != nil {
		t.Fatalf("addItem() error = %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Quantity != 2 {
		t.Errorf("cart after repeat add = %+v, want merged line with quantity 2", resp.Lines)
	}
	if resp.Totals.Subtotal != 700000 {
		t.Errorf("subtotal = %d, want 700000", resp.Totals.Subtotal)
	}
}

func TestCartModule_AddItem_UnknownProduct(t *testing.T) {
	m := newTestModule(t)

	if _, err := m.addItem(context.Background(), AddItemRequest{SessionID: "s-1", ProductID: 99}, nil); err == nil {
		t.Fatal("addItem() for unknown product: expected error, got nil")
	}

	resp, err := m.getCart(context.Background(), GetCartRequest{SessionID: "s-1"}, nil)
	if err != nil {
		t.Fatalf("getCart() error = %v", err)
	}
	if len(resp.Lines) != 0 {
		t.Errorf("cart after failed add = %+v, want empty", resp.Lines)
	}
}

func TestCartModule_SetQuantity_Clamps(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil); err != nil {
		t.Fatalf("addItem() error = %v", err)
	}

	resp, err := m.setQuantity(ctx, SetQuantityRequest{SessionID: "s-1", ProductID: 1, Quantity: 0}, nil)
	if err != nil {
		t.Fatalf("setQuantity() error = %v", err)
	}
	if resp.Lines[0].Quantity != 1 {
		t.Errorf("quantity after clamping 0 = %d, want 1", resp.Lines[0].Quantity)
	}
}

func TestCartModule_RemoveItem(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil); err != nil {
		t.Fatalf("addItem() error = %v", err)
	}
	if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 3}, nil); err != nil {
		t.Fatalf("addItem() error = %v", err)
	}

	resp, err := m.removeItem(ctx, RemoveItemRequest{SessionID: "s-1", ProductID: 1}, nil)
	if err != nil {
		t.Fatalf("removeItem() error = %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Product.ID != 3 {
		t.Errorf("cart after remove = %+v, want only product 3", resp.Lines)
	}

	// Removing an absent line is a no-op.
	resp, err = m.removeItem(ctx, RemoveItemRequest{SessionID: "s-1", ProductID: 1}, nil)
	if err != nil {
		t.Fatalf("removeItem() error = %v", err)
	}
	if len(resp.Lines) != 1 {
		t.Errorf("cart after removing absent line = %+v, want unchanged", resp.Lines)
	}
}

func TestCartModule_BuyNow_ReplacesCart(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil); err != nil {
			t.Fatalf("addItem() error = %v", err)
		}
	}

	resp, err := m.buyNow(ctx, BuyNowRequest{SessionID: "s-1", ProductID: 3}, nil)
	if err != nil {
		t.Fatalf("buyNow() error = %v", err)
	}
	if len(resp.Lines) != 1 {
		t.Fatalf("cart after buy-now = %+v, want exactly one line", resp.Lines)
	}
	if resp.Lines[0].Product.ID != 3 || resp.Lines[0].Quantity != 1 {
		t.Errorf("buy-now line = %+v, want product 3 quantity 1", resp.Lines[0])
	}
}

func TestCartModule_ClearCart(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil); err != nil {
		t.Fatalf("addItem() error = %v", err)
	}

	resp, err := m.clearCart(ctx, ClearCartRequest{SessionID: "s-1"}, nil)
	if err != nil {
		t.Fatalf("clearCart() error = %v", err)
	}
	if len(resp.Lines) != 0 || resp.Totals.Subtotal != 0 {
		t.Errorf("cart after clear = %+v, want empty", resp)
	}
}

func TestCartModule_SessionsAreIsolated(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	if _, err := m.addItem(ctx, AddItemRequest{SessionID: "s-1", ProductID: 1}, nil); err != nil {
		t.Fatalf("addItem() error = %v", err)
	}

	resp, err := m.getCart(ctx, GetCartRequest{SessionID: "s-2"}, nil)
	if err != nil {
		t.Fatalf("getCart() error = %v", err)
	}
	if len(resp.Lines) != 0 {
		t.Errorf("other session's cart = %+v, want empty", resp.Lines)
	}
}
