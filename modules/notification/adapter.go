package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// notificationAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements NotificationPort.
type notificationAdapter struct {
	container mono.ServiceContainer
}

// NewNotificationAdapter creates a new adapter for notification
// services. container is the ServiceContainer from the notification
// module received via SetDependencyServiceContainer.
func NewNotificationAdapter(container mono.ServiceContainer) NotificationPort {
	if container == nil {
		panic("notification adapter requires non-nil ServiceContainer")
	}
	return &notificationAdapter{container: container}
}

// SendContactMessage submits a contact form via the
// send-contact-message service.
func (a *notificationAdapter) SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactResponse, error) {
	var resp ContactResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"send-contact-message",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("send-contact-message service call failed: %w", err)
	}
	return &resp, nil
}
