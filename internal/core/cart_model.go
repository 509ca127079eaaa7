package core

import "github.com/shopspring/decimal"

// CartLine is one product-quantity pairing within a cart. Quantity never drops
// below 1; removal is an explicit operation, not a side effect of decrementing.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the selected products of one shopping session, in the order they
// were first added. At most one line exists per product id.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// Add inserts a line with quantity 1 for a new product, or increments the
// existing line's quantity by 1.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// AdjustQuantity applies delta to the line for productID, clamping the result
// at 1. Absent ids are a no-op.
func (c *Cart) AdjustQuantity(productID, delta int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			q := c.Lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Lines[i].Quantity = q
			return
		}
	}
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Count is the number of distinct lines, not total units. Used for the cart
// badge.
func (c *Cart) Count() int {
	return len(c.Lines)
}
