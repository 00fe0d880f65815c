package cart

import (
	"context"

	domain "github.com/example/matcha-store/domain/cart"
)

// AddItemRequest is the request for adding one unit of a product.
type AddItemRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

// SetQuantityRequest is the request for an explicit quantity edit.
type SetQuantityRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemRequest is the request for removing a cart line.
type RemoveItemRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

// BuyNowRequest is the request for the buy-now path: replace the whole
// cart with a single line for the product.
type BuyNowRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

// ClearCartRequest is the request for emptying a cart.
type ClearCartRequest struct {
	SessionID string `json:"session_id"`
}

// GetCartRequest is the request for reading a cart.
type GetCartRequest struct {
	SessionID string `json:"session_id"`
}

// CartResponse is the re-derived cart view returned by every cart
// operation: ordered lines plus totals. Callers render from this and
// never cache derived data.
type CartResponse struct {
	Lines  []domain.Line `json:"lines"`
	Totals domain.Totals `json:"totals"`
}

// CartPort defines the interface for cart operations (hexagonal port).
type CartPort interface {
	AddItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error)
	SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (*CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error)
	BuyNow(ctx context.Context, sessionID string, productID int) (*CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) (*CartResponse, error)
	GetCart(ctx context.Context, sessionID string) (*CartResponse, error)
}
