package checkout

import (
	"strings"
	"time"

	"github.com/example/matcha-store/domain/catalog"
)

// Page identifies the single active screen of a session.
type Page string

const (
	PageHome         Page = "home"
	PageShop         Page = "shop"
	PageAbout        Page = "about"
	PageContact      Page = "contact"
	PageCheckout     Page = "checkout"
	PagePayment      Page = "payment"
	PageConfirmation Page = "confirmation"
)

// Navigable reports whether the page is reachable through the plain
// navigation bar. The checkout, payment, and confirmation pages are
// only reachable through their dedicated flow actions.
func (p Page) Navigable() bool {
	switch p {
	case PageHome, PageShop, PageAbout, PageContact:
		return true
	}
	return false
}

// Valid reports whether the page belongs to the enumerated set.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageShop, PageAbout, PageContact,
		PageCheckout, PagePayment, PageConfirmation:
		return true
	}
	return false
}

// ShippingTier selects a row of the shipping tariff table.
type ShippingTier string

const (
	TierStandard ShippingTier = "standard"
	TierExpress  ShippingTier = "express"
)

var shippingTariffs = map[ShippingTier]int64{
	TierStandard: 15000,
	TierExpress:  30000,
}

// ShippingCost returns the tariff for the given tier.
func ShippingCost(t ShippingTier) (int64, error) {
	cost, ok := shippingTariffs[t]
	if !ok {
		return 0, ErrUnknownShippingTier
	}
	return cost, nil
}

// PaymentMethod is one of the cosmetic payment options. There is no
// payment backend; the selection only gates the confirm action.
type PaymentMethod string

const (
	PayBankTransfer   PaymentMethod = "bank_transfer"
	PayEWallet        PaymentMethod = "e_wallet"
	PayCreditCard     PaymentMethod = "credit_card"
	PayCashOnDelivery PaymentMethod = "cod"
)

// Valid reports whether the payment method belongs to the enumerated set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayBankTransfer, PayEWallet, PayCreditCard, PayCashOnDelivery:
		return true
	}
	return false
}

// OrderSummary is the derived subtotal/shipping/total for the active
// checkout attempt. It is recomputed from the cart and the selected
// shipping tier on every relevant transition, never stored durably.
type OrderSummary struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	Total        int64 `json:"total"`
}

// Summarize derives an order summary for the given cart subtotal and
// shipping tier.
func Summarize(subtotal int64, tier ShippingTier) (OrderSummary, error) {
	cost, err := ShippingCost(tier)
	if err != nil {
		return OrderSummary{}, err
	}
	return OrderSummary{
		Subtotal:     subtotal,
		ShippingCost: cost,
		Total:        subtotal + cost,
	}, nil
}

// Form carries the checkout contact/address fields. Content is not
// validated beyond presence.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Complete reports whether every required field is non-empty.
func (f Form) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Address) != ""
}

// Session is one shopper's view state: the active page plus the filter,
// shipping, form, and payment selections that drive what each page
// displays. The cart itself lives in the cart module; summary-bearing
// transitions receive the cart subtotal from the caller.
type Session struct {
	ID           string         `json:"id"`
	Page         Page           `json:"page"`
	Filter       catalog.Filter `json:"filter"`
	ShippingTier ShippingTier   `json:"shipping_tier"`
	Summary      OrderSummary   `json:"summary"`
	Form         Form           `json:"form"`
	Payment      PaymentMethod  `json:"payment,omitempty"`
	OrderNumber  string         `json:"order_number,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewSession creates a session on the home page with default filter and
// standard shipping.
func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		Page:         PageHome,
		Filter:       catalog.DefaultFilter(),
		ShippingTier: TierStandard,
		CreatedAt:    time.Now(),
	}
}

// Navigate moves to one of the navigation-bar pages. Entering the shop
// resets the filter state. Flow pages cannot be reached this way.
func (s *Session) Navigate(to Page) error {
	if !to.Valid() {
		return ErrUnknownPage
	}
	if !to.Navigable() {
		return ErrIllegalTransition
	}
	s.Page = to
	if to == PageShop {
		s.Filter = catalog.DefaultFilter()
	}
	return nil
}

// SetFilter updates the shop filter. Filter controls belong to the shop
// page only.
func (s *Session) SetFilter(f catalog.Filter) error {
	if s.Page != PageShop {
		return ErrIllegalTransition
	}
	if f.Category == "" {
		f.Category = catalog.CategoryAll
	}
	s.Filter = f
	return nil
}

// CheckoutOrigin reports whether checkout can be entered from the
// session's current page. The buy-now buttons on the featured grid
// make home a legal origin alongside the shop.
func (s *Session) CheckoutOrigin() bool {
	return s.Page == PageHome || s.Page == PageShop
}

// EnterCheckout moves to the checkout page and recomputes the order
// summary from the given cart subtotal.
func (s *Session) EnterCheckout(subtotal int64) error {
	if !s.CheckoutOrigin() {
		return ErrIllegalTransition
	}
	summary, err := Summarize(subtotal, s.ShippingTier)
	if err != nil {
		return err
	}
	s.Page = PageCheckout
	s.Summary = summary
	return nil
}

// SelectShipping changes the shipping tier and recomputes the summary.
// The shipping selector belongs to the checkout page.
func (s *Session) SelectShipping(tier ShippingTier, subtotal int64) error {
	if s.Page != PageCheckout {
		return ErrIllegalTransition
	}
	summary, err := Summarize(subtotal, tier)
	if err != nil {
		return err
	}
	s.ShippingTier = tier
	s.Summary = summary
	return nil
}

// Submit records the checkout form and moves to the payment page,
// recomputing the summary so the payment page shows the same total the
// checkout page displayed.
func (s *Session) Submit(form Form, subtotal int64) error {
	if s.Page != PageCheckout {
		return ErrIllegalTransition
	}
	if !form.Complete() {
		return ErrIncompleteForm
	}
	summary, err := Summarize(subtotal, s.ShippingTier)
	if err != nil {
		return err
	}
	s.Form = form
	s.Summary = summary
	s.Page = PagePayment
	return nil
}

// SelectPayment records the chosen payment method. The options belong
// to the payment page.
func (s *Session) SelectPayment(m PaymentMethod) error {
	if s.Page != PagePayment {
		return ErrIllegalTransition
	}
	if !m.Valid() {
		return ErrUnknownPaymentMethod
	}
	s.Payment = m
	return nil
}

// Confirm moves to the confirmation page, assigning the generated order
// number. It is rejected until a payment method has been selected. The
// cart is left untouched; only Reset clears it.
func (s *Session) Confirm(orderNumber string) error {
	if s.Page != PagePayment {
		return ErrIllegalTransition
	}
	if s.Payment == "" {
		return ErrNoPaymentMethod
	}
	s.OrderNumber = orderNumber
	s.Page = PageConfirmation
	return nil
}

// Reset returns the session to the home page and clears all entered
// state: filter, form, payment selection, summary, and order number.
// The caller is responsible for clearing the cart alongside.
func (s *Session) Reset() {
	s.Page = PageHome
	s.Filter = catalog.DefaultFilter()
	s.ShippingTier = TierStandard
	s.Summary = OrderSummary{}
	s.Form = Form{}
	s.Payment = ""
	s.OrderNumber = ""
}
