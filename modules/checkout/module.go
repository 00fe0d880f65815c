package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/matcha-store/events"
	"github.com/example/matcha-store/modules/cart"
	"github.com/example/matcha-store/modules/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CheckoutModule drives the per-session page state machine and the
// checkout flow. It owns sessions; the cart contents live in the cart
// module and are read through the cart port whenever a summary-bearing
// transition needs the subtotal.
type CheckoutModule struct {
	repo        *Repository
	cartPort    cart.CartPort
	catalogPort catalog.CatalogPort
	eventBus    mono.EventBus
	orderNumber func() string
}

var _ mono.Module = (*CheckoutModule)(nil)
var _ mono.ServiceProviderModule = (*CheckoutModule)(nil)
var _ mono.DependentModule = (*CheckoutModule)(nil)
var _ mono.EventEmitterModule = (*CheckoutModule)(nil)

func NewModule() *CheckoutModule {
	return &CheckoutModule{
		repo: NewRepository(),
	}
}

func (m *CheckoutModule) Name() string {
	return "checkout"
}

func (m *CheckoutModule) Dependencies() []string {
	return []string{"catalog", "cart"}
}

func (m *CheckoutModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "catalog":
		m.catalogPort = catalog.NewCatalogAdapter(container)
	case "cart":
		m.cartPort = cart.NewCartAdapter(container)
	}
}

func (m *CheckoutModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *CheckoutModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.OrderPlacedV1.ToBase(),
	}
}

func (m *CheckoutModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-session", json.Unmarshal, json.Marshal, m.createSession,
	); err != nil {
		return fmt.Errorf("failed to register create-session service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "navigate", json.Unmarshal, json.Marshal, m.navigate,
	); err != nil {
		return fmt.Errorf("failed to register navigate service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "set-filter", json.Unmarshal, json.Marshal, m.setFilter,
	); err != nil {
		return fmt.Errorf("failed to register set-filter service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "enter-checkout", json.Unmarshal, json.Marshal, m.enterCheckout,
	); err != nil {
		return fmt.Errorf("failed to register enter-checkout service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "buy-now", json.Unmarshal, json.Marshal, m.buyNow,
	); err != nil {
		return fmt.Errorf("failed to register buy-now service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "select-shipping", json.Unmarshal, json.Marshal, m.selectShipping,
	); err != nil {
		return fmt.Errorf("failed to register select-shipping service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "submit-order", json.Unmarshal, json.Marshal, m.submitOrder,
	); err != nil {
		return fmt.Errorf("failed to register submit-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "select-payment", json.Unmarshal, json.Marshal, m.selectPayment,
	); err != nil {
		return fmt.Errorf("failed to register select-payment service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "confirm-order", json.Unmarshal, json.Marshal, m.confirmOrder,
	); err != nil {
		return fmt.Errorf("failed to register confirm-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "reset-session", json.Unmarshal, json.Marshal, m.resetSession,
	); err != nil {
		return fmt.Errorf("failed to register reset-session service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-view", json.Unmarshal, json.Marshal, m.getView,
	); err != nil {
		return fmt.Errorf("failed to register get-view service: %w", err)
	}

	log.Printf("[checkout] Registered services: create-session, navigate, set-filter, enter-checkout, buy-now, select-shipping, submit-order, select-payment, confirm-order, reset-session, get-view")
	return nil
}

func (m *CheckoutModule) Start(_ context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}
	if m.cartPort == nil {
		return fmt.Errorf("cartPort dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[checkout] Warning: eventBus not set, events will not be published")
	}

	gen, err := NewOrderNumberGenerator()
	if err != nil {
		return err
	}
	m.orderNumber = gen

	log.Println("[checkout] Module started (depends on: catalog, cart)")
	return nil
}

func (m *CheckoutModule) Stop(_ context.Context) error {
	log.Println("[checkout] Module stopped")
	return nil
}
