// Package cart holds the lines of the sale currently being rung up.
package cart

import (
	"github.com/fekuna/omnipos-stand-service/internal/model"
	"github.com/shopspring/decimal"
)

// Cart keeps at most one line per product, in the order products were first
// added. A line never has a quantity below one. Not safe for concurrent use.
type Cart struct {
	lines []model.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add puts one more unit of p into the cart. A new line snapshots p's current
// name and price; later catalog edits do not reach it.
func (c *Cart) Add(p model.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
		UnitPrice: p.Price,
	})
}

// RemoveOne takes one unit off the product's line, dropping the line when it
// reaches zero. Unknown products are ignored.
func (c *Cart) RemoveOne(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal is exact; rounding happens only when amounts are shown or recorded.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the lines.
func (c *Cart) Lines() []model.CartLine {
	return append([]model.CartLine(nil), c.lines...)
}

// Quantity is the badge count shown on a product tile.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
