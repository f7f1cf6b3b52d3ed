package cart

import (
	"math"

	"sunsmart/models"
)

// GST rate applied to every order.
const TaxRate = 0.18

// Cart aggregates parts chosen by one browsing session. It lives in process
// memory only; there is deliberately no persistence (state is lost on
// restart, matching the throwaway nature of a browsing cart).
type Cart struct {
	lines []models.CartLine
}

// Add merges into an existing line by part id, summing quantities, otherwise
// appends a new line. Quantities below 1 count as 1.
func (c *Cart) Add(part models.Part, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].Part.ID == part.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Part: part, Quantity: qty})
}

// Remove drops the line for the given part id.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].Part.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a delta to a line's quantity, clamped to a minimum
// of 1. Decrementing never removes a line; that is what Remove is for.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.lines {
		if c.lines[i].Part.ID == id {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Clear empties the cart. Used after order placement or on demand.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int {
	sum := 0
	for _, l := range c.lines {
		sum += l.Part.Cost * l.Quantity
	}
	return sum
}

func (c *Cart) Tax() int {
	return int(math.Round(float64(c.Subtotal()) * TaxRate))
}

func (c *Cart) Total() int {
	return c.Subtotal() + c.Tax()
}
