package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// cartAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements CartPort.
type cartAdapter struct {
	container mono.ServiceContainer
}

// NewCartAdapter creates a new adapter for cart services.
// container is the ServiceContainer from the cart module received via
// SetDependencyServiceContainer.
func NewCartAdapter(container mono.ServiceContainer) CartPort {
	if container == nil {
		panic("cart adapter requires non-nil ServiceContainer")
	}
	return &cartAdapter{container: container}
}

func (a *cartAdapter) call(ctx context.Context, service string, req any) (*CartResponse, error) {
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", service, err)
	}
	return &resp, nil
}

// AddItem adds one unit of a product via the add-item service.
func (a *cartAdapter) AddItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	return a.call(ctx, "add-item", &AddItemRequest{SessionID: sessionID, ProductID: productID})
}

// SetQuantity edits a line quantity via the set-quantity service.
func (a *cartAdapter) SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (*CartResponse, error) {
	return a.call(ctx, "set-quantity", &SetQuantityRequest{SessionID: sessionID, ProductID: productID, Quantity: quantity})
}

// RemoveItem removes a line via the remove-item service.
func (a *cartAdapter) RemoveItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	return a.call(ctx, "remove-item", &RemoveItemRequest{SessionID: sessionID, ProductID: productID})
}

// BuyNow replaces the cart with a single line via the buy-now service.
func (a *cartAdapter) BuyNow(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	return a.call(ctx, "buy-now", &BuyNowRequest{SessionID: sessionID, ProductID: productID})
}

// ClearCart empties the cart via the clear-cart service.
func (a *cartAdapter) ClearCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	return a.call(ctx, "clear-cart", &ClearCartRequest{SessionID: sessionID})
}

// GetCart reads the cart via the get-cart service.
func (a *cartAdapter) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	return a.call(ctx, "get-cart", &GetCartRequest{SessionID: sessionID})
}
