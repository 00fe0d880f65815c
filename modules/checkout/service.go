package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	catalogdomain "github.com/example/matcha-store/domain/catalog"
	domain "github.com/example/matcha-store/domain/checkout"
	"github.com/example/matcha-store/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createSession handles the create-session service request. A new
// session starts on the home page; its cart is created lazily by the
// cart module on first use.
func (m *CheckoutModule) createSession(_ context.Context, _ CreateSessionRequest, _ *mono.Msg) (SessionResponse, error) {
	s := domain.NewSession(uuid.New().String())
	m.repo.Save(s)
	return toSessionResponse(s), nil
}

// navigate handles the navigate service request. Only navigation-bar
// pages are reachable this way; entering the shop resets the filter.
func (m *CheckoutModule) navigate(_ context.Context, req NavigateRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if err := s.Navigate(domain.Page(req.Page)); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// setFilter handles the set-filter service request.
func (m *CheckoutModule) setFilter(_ context.Context, req SetFilterRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	filter := catalogdomain.Filter{
		SearchTerm: req.SearchTerm,
		Category:   req.Category,
	}
	if err := s.SetFilter(filter); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// enterCheckout handles the enter-checkout service request, deriving a
// fresh order summary from the current cart subtotal.
func (m *CheckoutModule) enterCheckout(ctx context.Context, req EnterCheckoutRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	subtotal, err := m.subtotal(ctx, req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if err := s.EnterCheckout(subtotal); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// buyNow handles the buy-now service request: replace the cart with a
// single line for the product and enter checkout. The page check runs
// before the cart is touched, so a rejected buy-now leaves the ledger
// exactly as it was.
func (m *CheckoutModule) buyNow(ctx context.Context, req BuyNowRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if !s.CheckoutOrigin() {
		return SessionResponse{}, domain.ErrIllegalTransition
	}

	cartView, err := m.cartPort.BuyNow(ctx, req.SessionID, req.ProductID)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("failed to replace cart: %w", err)
	}
	if err := s.EnterCheckout(cartView.Totals.Subtotal); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// selectShipping handles the select-shipping service request. The
// summary is recomputed on every tier change.
func (m *CheckoutModule) selectShipping(ctx context.Context, req SelectShippingRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	subtotal, err := m.subtotal(ctx, req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if err := s.SelectShipping(domain.ShippingTier(req.Tier), subtotal); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// submitOrder handles the submit-order service request: the checkout
// form moves the session to the payment page, carrying the computed
// total forward.
func (m *CheckoutModule) submitOrder(ctx context.Context, req SubmitOrderRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	subtotal, err := m.subtotal(ctx, req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	form := domain.Form{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.Submit(form, subtotal); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// selectPayment handles the select-payment service request. The
// confirm action stays rejected until a method has been chosen.
func (m *CheckoutModule) selectPayment(_ context.Context, req SelectPaymentRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if err := s.SelectPayment(domain.PaymentMethod(req.Method)); err != nil {
		return SessionResponse{}, err
	}
	return toSessionResponse(s), nil
}

// confirmOrder handles the confirm-order service request: assigns the
// order number and moves to the confirmation page. The cart is left
// untouched until an explicit reset.
func (m *CheckoutModule) confirmOrder(ctx context.Context, req ConfirmRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if err := s.Confirm(m.orderNumber()); err != nil {
		return SessionResponse{}, err
	}

	if m.eventBus != nil {
		cartView, cartErr := m.cartPort.GetCart(ctx, req.SessionID)
		if cartErr != nil {
			log.Printf("[checkout] Warning: failed to read cart for OrderPlaced event: %v", cartErr)
		} else {
			event := events.OrderPlacedEvent{
				SessionID:   s.ID,
				OrderNumber: s.OrderNumber,
				ItemCount:   cartView.Totals.ItemCount,
				Total:       s.Summary.Total,
				PlacedAt:    time.Now(),
			}
			if err := events.OrderPlacedV1.Publish(m.eventBus, event, nil); err != nil {
				// Event publishing is best-effort; log but don't fail the operation
				log.Printf("[checkout] Warning: failed to publish OrderPlaced event for order %s: %v", s.OrderNumber, err)
			}
		}
	}

	return toSessionResponse(s), nil
}

// resetSession handles the reset-session service request: clears the
// cart, the form data, and every selection, and returns to home.
func (m *CheckoutModule) resetSession(ctx context.Context, req ResetRequest, _ *mono.Msg) (SessionResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return SessionResponse{}, err
	}
	if _, err := m.cartPort.ClearCart(ctx, req.SessionID); err != nil {
		return SessionResponse{}, fmt.Errorf("failed to clear cart: %w", err)
	}
	s.Reset()
	return toSessionResponse(s), nil
}

// getView handles the get-view service request, composing the full
// render input for the session's active page. Everything is re-derived
// on each call.
func (m *CheckoutModule) getView(ctx context.Context, req GetViewRequest, _ *mono.Msg) (ViewResponse, error) {
	s, err := m.repo.FindByID(req.SessionID)
	if err != nil {
		return ViewResponse{}, err
	}

	cartView, err := m.cartPort.GetCart(ctx, req.SessionID)
	if err != nil {
		return ViewResponse{}, fmt.Errorf("failed to read cart: %w", err)
	}

	view := ViewResponse{
		SessionID:   s.ID,
		Page:        string(s.Page),
		Filter:      s.Filter,
		Cart:        CartView{Lines: cartView.Lines, Totals: cartView.Totals},
		Tier:        string(s.ShippingTier),
		Summary:     s.Summary,
		Payment:     string(s.Payment),
		OrderNumber: s.OrderNumber,
	}

	switch s.Page {
	case domain.PageHome:
		featured, err := m.catalogPort.ListFeatured(ctx)
		if err != nil {
			return ViewResponse{}, fmt.Errorf("failed to list featured products: %w", err)
		}
		view.Featured = featured
	case domain.PageShop:
		products, err := m.catalogPort.QueryProducts(ctx, s.Filter)
		if err != nil {
			return ViewResponse{}, fmt.Errorf("failed to query products: %w", err)
		}
		categories, err := m.catalogPort.ListCategories(ctx)
		if err != nil {
			return ViewResponse{}, fmt.Errorf("failed to list categories: %w", err)
		}
		view.Products = products
		view.Categories = categories
	}

	return view, nil
}

// toSessionResponse converts a domain session to its service response.
func toSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:   s.ID,
		Page:        string(s.Page),
		Tier:        string(s.ShippingTier),
		Summary:     s.Summary,
		Payment:     string(s.Payment),
		OrderNumber: s.OrderNumber,
	}
}

// subtotal reads the current cart subtotal through the cart port.
func (m *CheckoutModule) subtotal(ctx context.Context, sessionID string) (int64, error) {
	cartView, err := m.cartPort.GetCart(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to read cart: %w", err)
	}
	return cartView.Totals.Subtotal, nil
}
