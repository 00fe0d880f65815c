package notification

import "context"

// ContactRequest is the request for the contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is the acknowledgment for a contact submission.
type ContactResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// NotificationPort defines the interface for the contact-form
// collaborator (hexagonal port).
type NotificationPort interface {
	SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactResponse, error)
}
