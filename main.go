package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/matcha-store/modules/api"
	"github.com/example/matcha-store/modules/cart"
	"github.com/example/matcha-store/modules/catalog"
	"github.com/example/matcha-store/modules/checkout"
	"github.com/example/matcha-store/modules/notification"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Matcha Store - Storefront Demo ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules in dependency order: independent modules first,
	// then modules with dependencies.
	app.Register(catalog.NewModule())      // Independent module (seeded product catalog)
	app.Register(notification.NewModule()) // Event consumer + contact form collaborator
	app.Register(cart.NewModule())         // Core domain (depends on catalog, emits events)
	app.Register(checkout.NewModule())     // Flow state machine (depends on catalog, cart)
	app.Register(api.NewModule())          // Driving adapter (depends on all of the above)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Storefront started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  GET    /api/v1/products                 - Browse the catalog (category/search filters)")
	log.Println("  GET    /api/v1/products/featured        - Home page featured grid")
	log.Println("  GET    /api/v1/products/categories      - Category filter values")
	log.Println("  GET    /api/v1/products/:id             - One product")
	log.Println("  POST   /api/v1/sessions                 - Open a shopper session")
	log.Println("  GET    /api/v1/sessions/:id             - Composed view state for the active page")
	log.Println("  POST   /api/v1/sessions/:id/navigate    - Change page (home, shop, about, contact)")
	log.Println("  POST   /api/v1/sessions/:id/filters     - Update shop search/category filter")
	log.Println("  POST   /api/v1/sessions/:id/cart/items  - Add a product to the cart")
	log.Println("  PUT    /api/v1/sessions/:id/cart/items/:productID - Edit a line quantity")
	log.Println("  DELETE /api/v1/sessions/:id/cart/items/:productID - Remove a line")
	log.Println("  POST   /api/v1/sessions/:id/buy-now     - Replace cart and jump to checkout")
	log.Println("  POST   /api/v1/sessions/:id/checkout    - Enter checkout")
	log.Println("  POST   /api/v1/sessions/:id/shipping    - Select shipping tier (standard, express)")
	log.Println("  POST   /api/v1/sessions/:id/submit      - Submit the checkout form")
	log.Println("  POST   /api/v1/sessions/:id/payment-method - Choose a payment method")
	log.Println("  POST   /api/v1/sessions/:id/pay         - Confirm and receive an order number")
	log.Println("  POST   /api/v1/sessions/:id/reset       - Full session reset back to home")
	log.Println("  POST   /api/v1/contact                  - Contact form")
	log.Println("  GET    /health                          - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
