package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// checkoutAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements CheckoutPort.
type checkoutAdapter struct {
	container mono.ServiceContainer
}

// NewCheckoutAdapter creates a new adapter for checkout services.
// container is the ServiceContainer from the checkout module received
// via SetDependencyServiceContainer.
func NewCheckoutAdapter(container mono.ServiceContainer) CheckoutPort {
	if container == nil {
		panic("checkout adapter requires non-nil ServiceContainer")
	}
	return &checkoutAdapter{container: container}
}

func (a *checkoutAdapter) callSession(ctx context.Context, service string, req any) (*SessionResponse, error) {
	var resp SessionResponse
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

// CreateSession opens a new shopper session via the create-session
// service.
func (a *checkoutAdapter) CreateSession(ctx context.Context) (*SessionResponse, error) {
	return a.callSession(ctx, "create-session", &CreateSessionRequest{})
}

// Navigate changes the active page via the navigate service.
func (a *checkoutAdapter) Navigate(ctx context.Context, sessionID, page string) (*SessionResponse, error) {
	return a.callSession(ctx, "navigate", &NavigateRequest{SessionID: sessionID, Page: page})
}

// SetFilter updates the shop filter via the set-filter service.
func (a *checkoutAdapter) SetFilter(ctx context.Context, sessionID, searchTerm, category string) (*SessionResponse, error) {
	return a.callSession(ctx, "set-filter", &SetFilterRequest{SessionID: sessionID, SearchTerm: searchTerm, Category: category})
}

// EnterCheckout moves the session to the checkout page via the
// enter-checkout service.
func (a *checkoutAdapter) EnterCheckout(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return a.callSession(ctx, "enter-checkout", &EnterCheckoutRequest{SessionID: sessionID})
}

// BuyNow replaces the cart and enters checkout via the buy-now
// service.
func (a *checkoutAdapter) BuyNow(ctx context.Context, sessionID string, productID int) (*SessionResponse, error) {
	return a.callSession(ctx, "buy-now", &BuyNowRequest{SessionID: sessionID, ProductID: productID})
}

// SelectShipping changes the shipping tier via the select-shipping
// service.
func (a *checkoutAdapter) SelectShipping(ctx context.Context, sessionID, tier string) (*SessionResponse, error) {
	return a.callSession(ctx, "select-shipping", &SelectShippingRequest{SessionID: sessionID, Tier: tier})
}

// SubmitOrder submits the checkout form via the submit-order service.
func (a *checkoutAdapter) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SessionResponse, error) {
	return a.callSession(ctx, "submit-order", req)
}

// SelectPayment chooses a payment method via the select-payment
// service.
func (a *checkoutAdapter) SelectPayment(ctx context.Context, sessionID, method string) (*SessionResponse, error) {
	return a.callSession(ctx, "select-payment", &SelectPaymentRequest{SessionID: sessionID, Method: method})
}

// Confirm performs the pay-now action via the confirm-order service.
func (a *checkoutAdapter) Confirm(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return a.callSession(ctx, "confirm-order", &ConfirmRequest{SessionID: sessionID})
}

// Reset performs the full session reset via the reset-session service.
func (a *checkoutAdapter) Reset(ctx context.Context, sessionID string) (*SessionResponse, error) {
	return a.callSession(ctx, "reset-session", &ResetRequest{SessionID: sessionID})
}

// GetView retrieves the composed view state via the get-view service.
func (a *checkoutAdapter) GetView(ctx context.Context, sessionID string) (*ViewResponse, error) {
	req := GetViewRequest{SessionID: sessionID}
	var resp ViewResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-view",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-view service call failed: %w", err)
	}
	return &resp, nil
}
