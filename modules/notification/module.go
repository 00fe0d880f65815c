package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/example/matcha-store/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// ErrIncompleteMessage is returned when a contact submission has an
// empty required field.
var ErrIncompleteMessage = errors.New("contact message requires name, email, and message")

// NotificationLog represents a logged notification.
type NotificationLog struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule records storefront activity as a driven adapter.
// It subscribes to cart and checkout events and provides the
// contact-form acknowledgment service.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.ServiceProviderModule = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "send-contact-message", json.Unmarshal, json.Marshal, m.sendContactMessage,
	); err != nil {
		return fmt.Errorf("failed to register send-contact-message service: %w", err)
	}

	log.Printf("[notification] Registered services: send-contact-message")
	return nil
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.ItemAddedV1, m.handleItemAdded, m); err != nil {
		return fmt.Errorf("failed to register ItemAdded consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ItemRemovedV1, m.handleItemRemoved, m); err != nil {
		return fmt.Errorf("failed to register ItemRemoved consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderPlacedV1, m.handleOrderPlaced, m); err != nil {
		return fmt.Errorf("failed to register OrderPlaced consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: ItemAdded, ItemRemoved, OrderPlaced")
	return nil
}

// sendContactMessage handles the send-contact-message service request.
// Validation is presence-only; the message content is not interpreted.
func (m *NotificationModule) sendContactMessage(_ context.Context, req ContactRequest, _ *mono.Msg) (ContactResponse, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return ContactResponse{}, ErrIncompleteMessage
	}

	m.logNotification(req.Email, "contact_message", fmt.Sprintf("Message from %s <%s>", req.Name, req.Email))
	return ContactResponse{Acknowledged: true}, nil
}

func (m *NotificationModule) handleItemAdded(_ context.Context, event events.ItemAddedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Item added: %s x%d (session %s)", event.Name, event.Quantity, event.SessionID)
	m.logNotification(event.SessionID, "item_added", fmt.Sprintf("'%s' now at quantity %d", event.Name, event.Quantity))
	return nil
}

func (m *NotificationModule) handleItemRemoved(_ context.Context, event events.ItemRemovedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Item removed: product %d (session %s)", event.ProductID, event.SessionID)
	m.logNotification(event.SessionID, "item_removed", fmt.Sprintf("Product %d removed from cart", event.ProductID))
	return nil
}

func (m *NotificationModule) handleOrderPlaced(_ context.Context, event events.OrderPlacedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order placed: %s, %d items, total %d (session %s)",
		event.OrderNumber, event.ItemCount, event.Total, event.SessionID)
	m.logNotification(event.SessionID, "order_placed", fmt.Sprintf("Order %s confirmed", event.OrderNumber))
	return nil
}

func (m *NotificationModule) logNotification(id, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		ID:        id,
		Type:      notificationType,
		Message:   message,
		Channel:   "event",
		Timestamp: time.Now(),
	})
}

func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for cart and order events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
