package checkout

import (
	"context"

	cartdomain "github.com/example/matcha-store/domain/cart"
	catalogdomain "github.com/example/matcha-store/domain/catalog"
	domain "github.com/example/matcha-store/domain/checkout"
)

// CreateSessionRequest is the request for opening a shopper session.
type CreateSessionRequest struct{}

// NavigateRequest is the request for a navigation-bar page change.
type NavigateRequest struct {
	SessionID string `json:"session_id"`
	Page      string `json:"page"`
}

// SetFilterRequest is the request for updating the shop filter.
type SetFilterRequest struct {
	SessionID  string `json:"session_id"`
	SearchTerm string `json:"search_term,omitempty"`
	Category   string `json:"category,omitempty"`
}

// EnterCheckoutRequest is the request for the explicit checkout action.
type EnterCheckoutRequest struct {
	SessionID string `json:"session_id"`
}

// BuyNowRequest is the request for the buy-now path: replace the cart
// with a single line and enter checkout in one step.
type BuyNowRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

// SelectShippingRequest is the request for a shipping tier change.
type SelectShippingRequest struct {
	SessionID string `json:"session_id"`
	Tier      string `json:"tier"`
}

// SubmitOrderRequest is the request for the checkout form submission.
type SubmitOrderRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// SelectPaymentRequest is the request for choosing a payment method.
type SelectPaymentRequest struct {
	SessionID string `json:"session_id"`
	Method    string `json:"method"`
}

// ConfirmRequest is the request for the pay-now action.
type ConfirmRequest struct {
	SessionID string `json:"session_id"`
}

// ResetRequest is the request for the full session reset.
type ResetRequest struct {
	SessionID string `json:"session_id"`
}

// GetViewRequest is the request for the composed view state.
type GetViewRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse reflects a session's flow state after an operation.
type SessionResponse struct {
	SessionID   string              `json:"session_id"`
	Page        string              `json:"page"`
	Tier        string              `json:"shipping_tier"`
	Summary     domain.OrderSummary `json:"summary"`
	Payment     string              `json:"payment,omitempty"`
	OrderNumber string              `json:"order_number,omitempty"`
}

// CartView is the cart portion of the composed view.
type CartView struct {
	Lines  []cartdomain.Line `json:"lines"`
	Totals cartdomain.Totals `json:"totals"`
}

// ViewResponse is the full render input for one session: the active
// page plus everything that page displays. It is re-derived on every
// call; nothing here is cached.
type ViewResponse struct {
	SessionID   string                  `json:"session_id"`
	Page        string                  `json:"page"`
	Filter      catalogdomain.Filter    `json:"filter"`
	Products    []catalogdomain.Product `json:"products,omitempty"`
	Featured    []catalogdomain.Product `json:"featured,omitempty"`
	Categories  []string                `json:"categories,omitempty"`
	Cart        CartView                `json:"cart"`
	Tier        string                  `json:"shipping_tier"`
	Summary     domain.OrderSummary     `json:"summary"`
	Payment     string                  `json:"payment,omitempty"`
	OrderNumber string                  `json:"order_number,omitempty"`
}

// CheckoutPort defines the interface for checkout flow operations
// (hexagonal port).
type CheckoutPort interface {
	CreateSession(ctx context.Context) (*SessionResponse, error)
	Navigate(ctx context.Context, sessionID, page string) (*SessionResponse, error)
	SetFilter(ctx context.Context, sessionID, searchTerm, category string) (*SessionResponse, error)
	EnterCheckout(ctx context.Context, sessionID string) (*SessionResponse, error)
	BuyNow(ctx context.Context, sessionID string, productID int) (*SessionResponse, error)
	SelectShipping(ctx context.Context, sessionID, tier string) (*SessionResponse, error)
	SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SessionResponse, error)
	SelectPayment(ctx context.Context, sessionID, method string) (*SessionResponse, error)
	Confirm(ctx context.Context, sessionID string) (*SessionResponse, error)
	Reset(ctx context.Context, sessionID string) (*SessionResponse, error)
	GetView(ctx context.Context, sessionID string) (*ViewResponse, error)
}
