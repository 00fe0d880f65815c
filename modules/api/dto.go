package api

import (
	cartdomain "github.com/example/matcha-store/domain/cart"
	catalogdomain "github.com/example/matcha-store/domain/catalog"
	checkoutdomain "github.com/example/matcha-store/domain/checkout"
	"github.com/example/matcha-store/modules/checkout"
	"github.com/example/matcha-store/pkg/money"
)

// ProductView is the HTTP representation of a catalog product, with
// the display price pre-formatted for the client.
type ProductView struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Category       string `json:"category"`
	Image          string `json:"image"`
}

// CartLineView is the HTTP representation of one cart line.
type CartLineView struct {
	Product            ProductView `json:"product"`
	Quantity           int         `json:"quantity"`
	LineTotal          int64       `json:"line_total"`
	LineTotalFormatted string      `json:"line_total_formatted"`
}

// CartTotalsView is the HTTP representation of the derived cart totals.
type CartTotalsView struct {
	ItemCount         int    `json:"item_count"`
	Subtotal          int64  `json:"subtotal"`
	SubtotalFormatted string `json:"subtotal_formatted"`
}

// CartStateView is the cart portion of a view response.
type CartStateView struct {
	Lines  []CartLineView `json:"lines"`
	Totals CartTotalsView `json:"totals"`
}

// SummaryView is the HTTP representation of an order summary.
type SummaryView struct {
	Subtotal              int64  `json:"subtotal"`
	SubtotalFormatted     string `json:"subtotal_formatted"`
	ShippingCost          int64  `json:"shipping_cost"`
	ShippingCostFormatted string `json:"shipping_cost_formatted"`
	Total                 int64  `json:"total"`
	TotalFormatted        string `json:"total_formatted"`
}

// SessionStateResponse reflects the flow state after a session
// operation.
type SessionStateResponse struct {
	SessionID   string      `json:"session_id"`
	Page        string      `json:"page"`
	Tier        string      `json:"shipping_tier"`
	Summary     SummaryView `json:"summary"`
	Payment     string      `json:"payment,omitempty"`
	OrderNumber string      `json:"order_number,omitempty"`
}

// ViewStateResponse is the full composed render input for one session.
type ViewStateResponse struct {
	SessionID   string               `json:"session_id"`
	Page        string               `json:"page"`
	Filter      catalogdomain.Filter `json:"filter"`
	Products    []ProductView        `json:"products,omitempty"`
	Featured    []ProductView        `json:"featured,omitempty"`
	Categories  []string             `json:"categories,omitempty"`
	Cart        CartStateView        `json:"cart"`
	Tier        string               `json:"shipping_tier"`
	Summary     SummaryView          `json:"summary"`
	Payment     string               `json:"payment,omitempty"`
	OrderNumber string               `json:"order_number,omitempty"`
}

// AddItemRequest is the HTTP request for adding a product to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

// SetQuantityRequest is the HTTP request for a quantity edit.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// BuyNowRequest is the HTTP request for the buy-now path.
type BuyNowRequest struct {
	ProductID int `json:"product_id"`
}

// NavigateRequest is the HTTP request for a page change.
type NavigateRequest struct {
	Page string `json:"page"`
}

// FilterRequest is the HTTP request for updating the shop filter.
type FilterRequest struct {
	SearchTerm string `json:"search_term"`
	Category   string `json:"category"`
}

// ShippingRequest is the HTTP request for a shipping tier change.
type ShippingRequest struct {
	Tier string `json:"tier"`
}

// CheckoutFormRequest is the HTTP request for the checkout form.
type CheckoutFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PaymentMethodRequest is the HTTP request for choosing a payment
// method.
type PaymentMethodRequest struct {
	Method string `json:"method"`
}

// ContactFormRequest is the HTTP request for the contact form.
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactFormResponse is the HTTP acknowledgment for the contact form.
type ContactFormResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// toProductView converts a catalog product for display.
func toProductView(p catalogdomain.Product) ProductView {
	return ProductView{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: money.FormatIDR(p.Price),
		Category:       p.Category,
		Image:          p.Image,
	}
}

func toProductViews(products []catalogdomain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

func toCartStateView(lines []cartdomain.Line, totals cartdomain.Totals) CartStateView {
	lineViews := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		lineTotal := l.Product.Price * int64(l.Quantity)
		lineViews = append(lineViews, CartLineView{
			Product:            toProductView(l.Product),
			Quantity:           l.Quantity,
			LineTotal:          lineTotal,
			LineTotalFormatted: money.FormatIDR(lineTotal),
		})
	}
	return CartStateView{
		Lines: lineViews,
		Totals: CartTotalsView{
			ItemCount:         totals.ItemCount,
			Subtotal:          totals.Subtotal,
			SubtotalFormatted: money.FormatIDR(totals.Subtotal),
		},
	}
}

func toSummaryView(s checkoutdomain.OrderSummary) SummaryView {
	return SummaryView{
		Subtotal:              s.Subtotal,
		SubtotalFormatted:     money.FormatIDR(s.Subtotal),
		ShippingCost:          s.ShippingCost,
		ShippingCostFormatted: money.FormatIDR(s.ShippingCost),
		Total:                 s.Total,
		TotalFormatted:        money.FormatIDR(s.Total),
	}
}

func toSessionStateResponse(s *checkout.SessionResponse) SessionStateResponse {
	return SessionStateResponse{
		SessionID:   s.SessionID,
		Page:        s.Page,
		Tier:        s.Tier,
		Summary:     toSummaryView(s.Summary),
		Payment:     s.Payment,
		OrderNumber: s.OrderNumber,
	}
}

func toViewStateResponse(v *checkout.ViewResponse) ViewStateResponse {
	return ViewStateResponse{
		SessionID:   v.SessionID,
		Page:        v.Page,
		Filter:      v.Filter,
		Products:    toProductViews(v.Products),
		Featured:    toProductViews(v.Featured),
		Categories:  v.Categories,
		Cart:        toCartStateView(v.Cart.Lines, v.Cart.Totals),
		Tier:        v.Tier,
		Summary:     toSummaryView(v.Summary),
		Payment:     v.Payment,
		OrderNumber: v.OrderNumber,
	}
}
