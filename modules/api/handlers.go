package api

import (
	"strconv"
	"strings"

	domain "github.com/example/matcha-store/domain/catalog"
	"github.com/example/matcha-store/modules/catalog"
	"github.com/example/matcha-store/modules/checkout"
	"github.com/example/matcha-store/modules/notification"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", m.healthHandler)

	// API v1 routes
	api := m.app.Group("/api/v1")

	// Catalog endpoints
	products := api.Group("/products")
	products.Get("/", m.listProducts)
	products.Get("/featured", m.listFeatured)
	products.Get("/categories", m.listCategories)
	products.Get("/:id", m.getProduct)

	// Session / checkout flow endpoints
	sessions := api.Group("/sessions")
	sessions.Post("/", m.createSession)
	sessions.Get("/:id", m.getView)
	sessions.Post("/:id/navigate", m.navigate)
	sessions.Post("/:id/filters", m.setFilter)
	sessions.Post("/:id/cart/items", m.addItem)
	sessions.Put("/:id/cart/items/:productID", m.setQuantity)
	sessions.Delete("/:id/cart/items/:productID", m.removeItem)
	sessions.Post("/:id/buy-now", m.buyNow)
	sessions.Post("/:id/checkout", m.enterCheckout)
	sessions.Post("/:id/shipping", m.selectShipping)
	sessions.Post("/:id/submit", m.submitOrder)
	sessions.Post("/:id/payment-method", m.selectPayment)
	sessions.Post("/:id/pay", m.confirmOrder)
	sessions.Post("/:id/reset", m.resetSession)

	// Contact form
	api.Post("/contact", m.sendContactMessage)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   listenAddr,
		},
	})
}

// listProducts handles GET /api/v1/products.
func (m *APIModule) listProducts(c *fiber.Ctx) error {
	filter := domain.Filter{
		SearchTerm: c.Query("search", ""),
		Category:   c.Query("category", domain.CategoryAll),
	}

	products, err := m.catalogPort.QueryProducts(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "query_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(toProductViews(products))
}

// listFeatured handles GET /api/v1/products/featured.
func (m *APIModule) listFeatured(c *fiber.Ctx) error {
	products, err := m.catalogPort.ListFeatured(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "query_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(toProductViews(products))
}

// listCategories handles GET /api/v1/products/categories.
func (m *APIModule) listCategories(c *fiber.Ctx) error {
	categories, err := m.catalogPort.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "query_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(categories)
}

// getProduct handles GET /api/v1/products/:id.
func (m *APIModule) getProduct(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Product ID must be an integer",
		})
	}

	product, err := m.catalogPort.GetProduct(c.Context(), productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Product not found",
		})
	}

	return c.JSON(toProductView(*product))
}

// createSession handles POST /api/v1/sessions.
func (m *APIModule) createSession(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.CreateSession(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(toSessionStateResponse(resp))
}

// getView handles GET /api/v1/sessions/:id.
func (m *APIModule) getView(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.GetView(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Session not found",
		})
	}
	return c.JSON(toViewStateResponse(resp))
}

// navigate handles POST /api/v1/sessions/:id/navigate.
func (m *APIModule) navigate(c *fiber.Ctx) error {
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Page == "" {
		return badRequest(c, "Page is required")
	}

	resp, err := m.checkoutPort.Navigate(c.Context(), c.Params("id"), req.Page)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// setFilter handles POST /api/v1/sessions/:id/filters.
func (m *APIModule) setFilter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.checkoutPort.SetFilter(c.Context(), c.Params("id"), req.SearchTerm, req.Category)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// addItem handles POST /api/v1/sessions/:id/cart/items.
func (m *APIModule) addItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.cartPort.AddItem(c.Context(), c.Params("id"), req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	}
	return c.JSON(toCartStateView(resp.Lines, resp.Totals))
}

// setQuantity handles PUT /api/v1/sessions/:id/cart/items/:productID.
func (m *APIModule) setQuantity(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return badRequest(c, "Product ID must be an integer")
	}

	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.cartPort.SetQuantity(c.Context(), c.Params("id"), productID, req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "update_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(toCartStateView(resp.Lines, resp.Totals))
}

// removeItem handles DELETE /api/v1/sessions/:id/cart/items/:productID.
func (m *APIModule) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		return badRequest(c, "Product ID must be an integer")
	}

	resp, err := m.cartPort.RemoveItem(c.Context(), c.Params("id"), productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "remove_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(toCartStateView(resp.Lines, resp.Totals))
}

// buyNow handles POST /api/v1/sessions/:id/buy-now: the cart is
// replaced with a single line for the product and the session moves
// straight to the checkout page. The checkout module orchestrates both
// steps so a rejected transition never touches the cart.
func (m *APIModule) buyNow(c *fiber.Ctx) error {
	var req BuyNowRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.checkoutPort.BuyNow(c.Context(), c.Params("id"), req.ProductID)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// enterCheckout handles POST /api/v1/sessions/:id/checkout.
func (m *APIModule) enterCheckout(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.EnterCheckout(c.Context(), c.Params("id"))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// selectShipping handles POST /api/v1/sessions/:id/shipping.
func (m *APIModule) selectShipping(c *fiber.Ctx) error {
	var req ShippingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Tier == "" {
		return badRequest(c, "Shipping tier is required")
	}

	resp, err := m.checkoutPort.SelectShipping(c.Context(), c.Params("id"), req.Tier)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// submitOrder handles POST /api/v1/sessions/:id/submit.
func (m *APIModule) submitOrder(c *fiber.Ctx) error {
	var req CheckoutFormRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.checkoutPort.SubmitOrder(c.Context(), &checkout.SubmitOrderRequest{
		SessionID: c.Params("id"),
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// selectPayment handles POST /api/v1/sessions/:id/payment-method.
func (m *APIModule) selectPayment(c *fiber.Ctx) error {
	var req PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Method == "" {
		return badRequest(c, "Payment method is required")
	}

	resp, err := m.checkoutPort.SelectPayment(c.Context(), c.Params("id"), req.Method)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// confirmOrder handles POST /api/v1/sessions/:id/pay.
func (m *APIModule) confirmOrder(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// resetSession handles POST /api/v1/sessions/:id/reset.
func (m *APIModule) resetSession(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(toSessionStateResponse(resp))
}

// sendContactMessage handles POST /api/v1/contact.
func (m *APIModule) sendContactMessage(c *fiber.Ctx) error {
	var req ContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := m.notificationPort.SendContactMessage(c.Context(), &notification.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(ContactFormResponse{Acknowledged: resp.Acknowledged})
}

// badRequest writes a 400 validation error.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}

// flowError writes a 409 for checkout flow rejections (illegal
// transitions, missing selections) and a 404 for unknown sessions or
// products. Sentinel identity does not survive the service bus, so the
// mapping matches on the sentinel messages.
func flowError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if strings.Contains(msg, checkout.ErrSessionNotFound.Error()) ||
		strings.Contains(msg, catalog.ErrProductNotFound.Error()) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: msg,
		})
	}
	return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
		Error:   "flow_error",
		Message: msg,
	})
}
