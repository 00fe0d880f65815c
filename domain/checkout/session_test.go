package checkout

import (
	"errors"
	"testing"

	"github.com/example/matcha-store/domain/catalog"
)

func newShopSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("s-1")
	if err := s.Navigate(PageShop); err != nil {
		t.Fatalf("Navigate(shop) error = %v", err)
	}
	return s
}

func TestSession_StartsAtHome(t *testing.T) {
	s := NewSession("s-1")
	if s.Page != PageHome {
		t.Errorf("initial page = %s, want %s", s.Page, PageHome)
	}
	if s.Filter != catalog.DefaultFilter() {
		t.Errorf("initial filter = %+v, want default", s.Filter)
	}
	if s.ShippingTier != TierStandard {
		t.Errorf("initial tier = %s, want %s", s.ShippingTier, TierStandard)
	}
}

func TestSession_Navigate(t *testing.T) {
	tests := []struct {
		name    string
		to      Page
		wantErr error
	}{
		{name: "home", to: PageHome},
		{name: "shop", to: PageShop},
		{name: "about", to: PageAbout},
		{name: "contact", to: PageContact},
		{name: "checkout not navigable", to: PageCheckout, wantErr: ErrIllegalTransition},
		{name: "payment not navigable", to: PagePayment, wantErr: ErrIllegalTransition},
		{name: "confirmation not navigable", to: PageConfirmation, wantErr: ErrIllegalTransition},
		{name: "unknown page", to: Page("basket"), wantErr: ErrUnknownPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("s-1")
			err := s.Navigate(tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Navigate(%s) error = %v, want %v", tt.to, err, tt.wantErr)
			}
			if tt.wantErr != nil && s.Page != PageHome {
				t.Errorf("page after rejected navigation = %s, want %s", s.Page, PageHome)
			}
		})
	}
}

func TestSession_EnterShopResetsFilter(t *testing.T) {
	s := newShopSession(t)
	if err := s.SetFilter(catalog.Filter{SearchTerm: "matcha", Category: "Powder"}); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}

	if err := s.Navigate(PageAbout); err != nil {
		t.Fatalf("Navigate(about) error = %v", err)
	}
	if err := s.Navigate(PageShop); err != nil {
		t.Fatalf("Navigate(shop) error = %v", err)
	}

	if s.Filter != catalog.DefaultFilter() {
		t.Errorf("filter after re-entering shop = %+v, want default", s.Filter)
	}
}

func TestSession_SetFilter_OnlyOnShop(t *testing.T) {
	s := NewSession("s-1")
	err := s.SetFilter(catalog.Filter{SearchTerm: "matcha"})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("SetFilter() on home error = %v, want %v", err, ErrIllegalTransition)
	}
}

func TestSession_EnterCheckout(t *testing.T) {
	s := newShopSession(t)
	if err := s.EnterCheckout(700000); err != nil {
		t.Fatalf("EnterCheckout() error = %v", err)
	}

	if s.Page != PageCheckout {
		t.Errorf("page = %s, want %s", s.Page, PageCheckout)
	}
	want := OrderSummary{Subtotal: 700000, ShippingCost: 15000, Total: 715000}
	if s.Summary != want {
		t.Errorf("summary = %+v, want %+v", s.Summary, want)
	}
}

func TestSession_EnterCheckout_FromHome(t *testing.T) {
	// Buy-now on the featured grid makes home a legal checkout origin.
	s := NewSession("s-1")
	if err := s.EnterCheckout(350000); err != nil {
		t.Fatalf("EnterCheckout() from home error = %v", err)
	}
	if s.Page != PageCheckout {
		t.Errorf("page = %s, want %s", s.Page, PageCheckout)
	}
}

func TestSession_EnterCheckout_IllegalFromFlowPages(t *testing.T) {
	s := NewSession("s-1")
	if err := s.Navigate(PageAbout); err != nil {
		t.Fatalf("Navigate(about) error = %v", err)
	}
	if err := s.EnterCheckout(0); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("EnterCheckout() from about error = %v, want %v", err, ErrIllegalTransition)
	}
}

func TestSession_SelectShipping(t *testing.T) {
	s := newShopSession(t)
	if err := s.EnterCheckout(700000); err != nil {
		t.Fatalf("EnterCheckout() error = %v", err)
	}

	if err := s.SelectShipping(TierExpress, 700000); err != nil {
		t.Fatalf("SelectShipping(express) error = %v", err)
	}
	want := OrderSummary{Subtotal: 700000, ShippingCost: 30000, Total: 730000}
	if s.Summary != want {
		t.Errorf("summary = %+v, want %+v", s.Summary, want)
	}

	if err := s.SelectShipping(ShippingTier("drone"), 700000); !errors.Is(err, ErrUnknownShippingTier) {
		t.Errorf("SelectShipping(drone) error = %v, want %v", err, ErrUnknownShippingTier)
	}
	if s.Summary != want {
		t.Errorf("summary after rejected tier = %+v, want %+v (unchanged)", s.Summary, want)
	}
}

func TestSession_Submit(t *testing.T) {
	form := Form{Name: "Alice", Email: "alice@example.com", Address: "Jl. Melati 1"}

	t.Run("moves to payment and carries the total", func(t *testing.T) {
		s := newShopSession(t)
		if err := s.EnterCheckout(700000); err != nil {
			t.Fatalf("EnterCheckout() error = %v", err)
		}
		if err := s.Submit(form, 700000); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if s.Page != PagePayment {
			t.Errorf("page = %s, want %s", s.Page, PagePayment)
		}
		if s.Summary.Total != 715000 {
			t.Errorf("total carried to payment = %d, want 715000", s.Summary.Total)
		}
	})

	t.Run("rejects incomplete form", func(t *testing.T) {
		s := newShopSession(t)
		if err := s.EnterCheckout(700000); err != nil {
			t.Fatalf("EnterCheckout() error = %v", err)
		}
		err := s.Submit(Form{Name: "Alice"}, 700000)
		if !errors.Is(err, ErrIncompleteForm) {
			t.Fatalf("Submit() error = %v, want %v", err, ErrIncompleteForm)
		}
		if s.Page != PageCheckout {
			t.Errorf("page after rejected submit = %s, want %s", s.Page, PageCheckout)
		}
	})

	t.Run("illegal outside checkout", func(t *testing.T) {
		s := NewSession("s-1")
		if err := s.Submit(form, 0); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("Submit() on home error = %v, want %v", err, ErrIllegalTransition)
		}
	})
}

func TestSession_PaymentGuard(t *testing.T) {
	s := newShopSession(t)
	if err := s.EnterCheckout(350000); err != nil {
		t.Fatalf("EnterCheckout() error = %v", err)
	}
	form := Form{Name: "Alice", Email: "alice@example.com", Address: "Jl. Melati 1"}
	if err := s.Submit(form, 350000); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// Confirm is rejected until a payment method has been selected.
	if err := s.Confirm("EM-000000000001"); !errors.Is(err, ErrNoPaymentMethod) {
		t.Fatalf("Confirm() before selection error = %v, want %v", err, ErrNoPaymentMethod)
	}

	if err := s.SelectPayment(PaymentMethod("barter")); !errors.Is(err, ErrUnknownPaymentMethod) {
		t.Fatalf("SelectPayment(barter) error = %v, want %v", err, ErrUnknownPaymentMethod)
	}
	if err := s.SelectPayment(PayEWallet); err != nil {
		t.Fatalf("SelectPayment(e_wallet) error = %v", err)
	}

	if err := s.Confirm("EM-000000000001"); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if s.Page != PageConfirmation {
		t.Errorf("page = %s, want %s", s.Page, PageConfirmation)
	}
	if s.OrderNumber != "EM-000000000001" {
		t.Errorf("order number = %q, want EM-000000000001", s.OrderNumber)
	}
}

func TestSession_SelectPayment_OnlyOnPaymentPage(t *testing.T) {
	s := NewSession("s-1")
	if err := s.SelectPayment(PayBankTransfer); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("SelectPayment() on home error = %v, want %v", err, ErrIllegalTransition)
	}
}

func TestSession_Reset(t *testing.T) {
	s := newShopSession(t)
	if err := s.EnterCheckout(350000); err != nil {
		t.Fatalf("EnterCheckout() error = %v", err)
	}
	form := Form{Name: "Alice", Email: "alice@example.com", Address: "Jl. Melati 1"}
	if err := s.Submit(form, 350000); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := s.SelectPayment(PayCreditCard); err != nil {
		t.Fatalf("SelectPayment() error = %v", err)
	}
	if err := s.Confirm("EM-1"); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	s.Reset()

	if s.Page != PageHome {
		t.Errorf("page = %s, want %s", s.Page, PageHome)
	}
	if s.Form != (Form{}) {
		t.Errorf("form after reset = %+v, want empty", s.Form)
	}
	if s.Payment != "" || s.OrderNumber != "" {
		t.Errorf("payment=%q order=%q after reset, want both empty", s.Payment, s.OrderNumber)
	}
	if s.Summary != (OrderSummary{}) {
		t.Errorf("summary after reset = %+v, want zero", s.Summary)
	}
}

func TestShippingCost(t *testing.T) {
	if cost, err := ShippingCost(TierStandard); err != nil || cost != 15000 {
		t.Errorf("ShippingCost(standard) = %d, %v; want 15000, nil", cost, err)
	}
	if cost, err := ShippingCost(TierExpress); err != nil || cost != 30000 {
		t.Errorf("ShippingCost(express) = %d, %v; want 30000, nil", cost, err)
	}
	if _, err := ShippingCost(ShippingTier("overnight")); !errors.Is(err, ErrUnknownShippingTier) {
		t.Errorf("ShippingCost(overnight) error = %v, want %v", err, ErrUnknownShippingTier)
	}
}
