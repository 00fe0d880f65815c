package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/matcha-store/modules/cart"
	"github.com/example/matcha-store/modules/catalog"
	"github.com/example/matcha-store/modules/checkout"
	"github.com/example/matcha-store/modules/notification"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// listenAddr is the HTTP listen address of the storefront API.
const listenAddr = ":3000"

// APIModule is the driving adapter that exposes REST endpoints. It
// calls into the core modules via their port interfaces.
type APIModule struct {
	app              *fiber.App
	catalogPort      catalog.CatalogPort
	cartPort         cart.CartPort
	checkoutPort     checkout.CheckoutPort
	notificationPort notification.NotificationPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	return &APIModule{}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies. The framework
// will call SetDependencyServiceContainer for each dependency.
func (m *APIModule) Dependencies() []string {
	return []string{"catalog", "cart", "checkout", "notification"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "catalog":
		m.catalogPort = catalog.NewCatalogAdapter(container)
	case "cart":
		m.cartPort = cart.NewCartAdapter(container)
	case "checkout":
		m.checkoutPort = checkout.NewCheckoutAdapter(container)
	case "notification":
		m.notificationPort = notification.NewNotificationAdapter(container)
	}
}

// Start initializes the Fiber HTTP server. Returns an error if
// required dependencies are not set.
func (m *APIModule) Start(_ context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}
	if m.cartPort == nil {
		return fmt.Errorf("cartPort dependency not set")
	}
	if m.checkoutPort == nil {
		return fmt.Errorf("checkoutPort dependency not set")
	}
	if m.notificationPort == nil {
		return fmt.Errorf("notificationPort dependency not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	// Add recovery middleware
	m.app.Use(recover.New())

	// Setup routes
	m.setupRoutes()

	// Start server in goroutine.
	// Server availability is verified via Health() method.
	go func() {
		if err := m.app.Listen(listenAddr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", listenAddr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(ctx context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": listenAddr,
		},
	}
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
