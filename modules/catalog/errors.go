package catalog

import "errors"

// ErrProductNotFound is returned when a product id is absent from the
// catalog.
var ErrProductNotFound = errors.New("product not found")
