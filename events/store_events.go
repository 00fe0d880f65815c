package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ItemAddedEvent is emitted when a product is added to a cart (both the
// add-to-cart and buy-now paths).
type ItemAddedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID int       `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// ItemAddedV1 is the typed event definition for cart additions.
// Subject: events.cart.v1.item-added
var ItemAddedV1 = helper.EventDefinition[ItemAddedEvent](
	"cart", "ItemAdded", "v1",
)

// ItemRemovedEvent is emitted when a line is removed from a cart.
type ItemRemovedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID int       `json:"product_id"`
	RemovedAt time.Time `json:"removed_at"`
}

// ItemRemovedV1 is the typed event definition for cart removals.
// Subject: events.cart.v1.item-removed
var ItemRemovedV1 = helper.EventDefinition[ItemRemovedEvent](
	"cart", "ItemRemoved", "v1",
)

// OrderPlacedEvent is emitted when a session confirms payment and
// receives its order number.
type OrderPlacedEvent struct {
	SessionID   string    `json:"session_id"`
	OrderNumber string    `json:"order_number"`
	ItemCount   int       `json:"item_count"`
	Total       int64     `json:"total"`
	PlacedAt    time.Time `json:"placed_at"`
}

// OrderPlacedV1 is the typed event definition for order confirmation.
// Subject: events.checkout.v1.order-placed
var OrderPlacedV1 = helper.EventDefinition[OrderPlacedEvent](
	"checkout", "OrderPlaced", "v1",
)
