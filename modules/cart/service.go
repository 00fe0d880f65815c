package cart

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/matcha-store/domain/cart"
	catalogdomain "github.com/example/matcha-store/domain/catalog"
	"github.com/example/matcha-store/events"
	"github.com/go-monolith/mono"
)

// addItem handles the add-item service request. Adding an already
// carted product increments its line; the line keeps its position.
func (m *CartModule) addItem(ctx context.Context, req AddItemRequest, _ *mono.Msg) (CartResponse, error) {
	product, err := m.catalogPort.GetProduct(ctx, req.ProductID)
	if err != nil {
		return CartResponse{}, fmt.Errorf("failed to resolve product: %w", err)
	}

	c := m.repo.Get(req.SessionID)
	c.AddOne(*product)

	m.publishItemAdded(req.SessionID, *product, c)

	return toCartResponse(c), nil
}

// setQuantity handles the set-quantity service request. Quantities
// below 1 are clamped to 1; an absent line is a no-op.
func (m *CartModule) setQuantity(_ context.Context, req SetQuantityRequest, _ *mono.Msg) (CartResponse, error) {
	c := m.repo.Get(req.SessionID)
	c.SetQuantity(req.ProductID, req.Quantity)
	return toCartResponse(c), nil
}

// removeItem handles the remove-item service request. Removing an
// absent line is a no-op.
func (m *CartModule) removeItem(_ context.Context, req RemoveItemRequest, _ *mono.Msg) (CartResponse, error) {
	c := m.repo.Get(req.SessionID)
	if c.Remove(req.ProductID) && m.eventBus != nil {
		event := events.ItemRemovedEvent{
			SessionID: req.SessionID,
			ProductID: req.ProductID,
			RemovedAt: time.Now(),
		}
		if err := events.ItemRemovedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[cart] Warning: failed to publish ItemRemoved event for product %d: %v", req.ProductID, err)
		}
	}
	return toCartResponse(c), nil
}

// buyNow handles the buy-now service request: the cart is replaced
// with a single quantity-1 line for the product, bypassing any prior
// contents.
func (m *CartModule) buyNow(ctx context.Context, req BuyNowRequest, _ *mono.Msg) (CartResponse, error) {
	product, err := m.catalogPort.GetProduct(ctx, req.ProductID)
	if err != nil {
		return CartResponse{}, fmt.Errorf("failed to resolve product: %w", err)
	}

	c := m.repo.Get(req.SessionID)
	c.ReplaceWithSingle(*product)

	m.publishItemAdded(req.SessionID, *product, c)

	return toCartResponse(c), nil
}

// clearCart handles the clear-cart service request. The ledger entry is
// dropped entirely; the next cart operation recreates it empty.
func (m *CartModule) clearCart(_ context.Context, req ClearCartRequest, _ *mono.Msg) (CartResponse, error) {
	m.repo.Drop(req.SessionID)
	return toCartResponse(domain.New()), nil
}

// getCart handles the get-cart service request.
func (m *CartModule) getCart(_ context.Context, req GetCartRequest, _ *mono.Msg) (CartResponse, error) {
	return toCartResponse(m.repo.Get(req.SessionID)), nil
}

func (m *CartModule) publishItemAdded(sessionID string, p catalogdomain.Product, c *domain.Cart) {
	if m.eventBus == nil {
		return
	}
	quantity := 0
	for _, l := range c.Lines() {
		if l.Product.ID == p.ID {
			quantity = l.Quantity
			break
		}
	}
	event := events.ItemAddedEvent{
		SessionID: sessionID,
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := events.ItemAddedV1.Publish(m.eventBus, event, nil); err != nil {
		// Event publishing is best-effort; log but don't fail the operation
		log.Printf("[cart] Warning: failed to publish ItemAdded event for product %d: %v", p.ID, err)
	}
}

// toCartResponse derives the cart view returned by every operation.
func toCartResponse(c *domain.Cart) CartResponse {
	return CartResponse{
		Lines:  c.Lines(),
		Totals: c.Totals(),
	}
}
