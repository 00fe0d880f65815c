package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/matcha-store/events"
	"github.com/example/matcha-store/modules/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CartModule owns the per-session cart ledgers (core domain).
type CartModule struct {
	repo        *Repository
	catalogPort catalog.CatalogPort
	eventBus    mono.EventBus
}

var _ mono.Module = (*CartModule)(nil)
var _ mono.ServiceProviderModule = (*CartModule)(nil)
var _ mono.DependentModule = (*CartModule)(nil)
var _ mono.EventEmitterModule = (*CartModule)(nil)

func NewModule() *CartModule {
	return &CartModule{
		repo: NewRepository(),
	}
}

func (m *CartModule) Name() string {
	return "cart"
}

func (m *CartModule) Dependencies() []string {
	return []string{"catalog"}
}

func (m *CartModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "catalog" {
		m.catalogPort = catalog.NewCatalogAdapter(container)
	}
}

func (m *CartModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *CartModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ItemAddedV1.ToBase(),
		events.ItemRemovedV1.ToBase(),
	}
}

func (m *CartModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-item", json.Unmarshal, json.Marshal, m.addItem,
	); err != nil {
		return fmt.Errorf("failed to register add-item service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "set-quantity", json.Unmarshal, json.Marshal, m.setQuantity,
	); err != nil {
		return fmt.Errorf("failed to register set-quantity service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-item", json.Unmarshal, json.Marshal, m.removeItem,
	); err != nil {
		return fmt.Errorf("failed to register remove-item service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "buy-now", json.Unmarshal, json.Marshal, m.buyNow,
	); err != nil {
		return fmt.Errorf("failed to register buy-now service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear-cart", json.Unmarshal, json.Marshal, m.clearCart,
	); err != nil {
		return fmt.Errorf("failed to register clear-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-cart", json.Unmarshal, json.Marshal, m.getCart,
	); err != nil {
		return fmt.Errorf("failed to register get-cart service: %w", err)
	}

	log.Printf("[cart] Registered services: add-item, set-quantity, remove-item, buy-now, clear-cart, get-cart")
	return nil
}

func (m *CartModule) Start(_ context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[cart] Warning: eventBus not set, events will not be published")
	}
	log.Println("[cart] Module started (depends on: catalog)")
	return nil
}

func (m *CartModule) Stop(_ context.Context) error {
	log.Println("[cart] Module stopped")
	return nil
}
