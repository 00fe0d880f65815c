package cart

import (
	domain "github.com/example/matcha-store/domain/catalog"
)

// Line is one product's chosen quantity within the cart. The product
// fields are copied from the catalog when the line is created.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Totals are the derived quantities of a cart: the summed line
// quantities and the summed price*quantity subtotal.
type Totals struct {
	ItemCount int   `json:"item_count"`
	Subtotal  int64 `json:"subtotal"`
}

// Cart is an ordered ledger of lines, at most one per product id.
// Lines keep their insertion position across quantity edits; only an
// explicit Remove, ReplaceWithSingle, or Clear drops a line.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddOne increments the quantity for p's line by one, appending a new
// line with quantity 1 when the product is not yet in the cart.
func (c *Cart) AddOne(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// SetQuantity sets the quantity for the given product's line. Any
// quantity below 1 is clamped to 1; reducing a quantity never removes
// the line (removal is a separate explicit action). Returns false when
// no line exists for the product.
func (c *Cart) SetQuantity(productID, quantity int) bool {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			if quantity < 1 {
				quantity = 1
			}
			c.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the line for the given product. Returns false when no
// line exists for the product.
func (c *Cart) Remove(productID int) bool {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceWithSingle empties the cart and inserts exactly one line with
// quantity 1 for p (the "buy now" path).
func (c *Cart) ReplaceWithSingle(p domain.Product) {
	c.lines = []Line{{Product: p, Quantity: 1}}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals derives the item count and subtotal from the current lines.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.Product.Price * int64(l.Quantity)
	}
	return t
}
