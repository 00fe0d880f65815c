package checkout

import "errors"

// Sentinel errors for checkout flow operations.
var (
	// ErrIllegalTransition is returned when an action is not legal from
	// the session's current page.
	ErrIllegalTransition = errors.New("illegal page transition")

	// ErrUnknownPage is returned when a navigation request names a page
	// outside the enumerated set.
	ErrUnknownPage = errors.New("unknown page")

	// ErrUnknownShippingTier is returned for a shipping tier outside the
	// tariff table.
	ErrUnknownShippingTier = errors.New("unknown shipping tier")

	// ErrUnknownPaymentMethod is returned for a payment method outside
	// the enumerated set.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	// ErrNoPaymentMethod is returned when payment is confirmed before a
	// method has been selected.
	ErrNoPaymentMethod = errors.New("no payment method selected")

	// ErrIncompleteForm is returned when the checkout form is submitted
	// with a required field left empty.
	ErrIncompleteForm = errors.New("required form field is empty")
)
