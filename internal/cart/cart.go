package cart

import (
	"sync"

	"github.com/lumina-commerce/storefront/internal/catalog"
)

// Line is one product-and-quantity entry in the cart. Product is a snapshot of
// the catalog entry taken at the time of the first add.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Total returns the line's contribution to the cart subtotal.
func (l Line) Total() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart holds at most one line per product id, in first-add order. All
// operations are total: they never fail, they clamp or no-op instead.
type Cart struct {
	mu    sync.Mutex
	lines []Line
	index map[string]int // product id -> position in lines
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add inserts a new line with quantity 1 or increments the existing line for
// the same product id.
func (c *Cart) Add(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line for the given product id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}

// Adjust changes a line's quantity by delta, clamped so it never drops below 1.
// Adjusting an absent id is a no-op.
func (c *Cart) Adjust(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	q := c.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.lines[i].Quantity = q
}

// Lines returns a copy of the cart contents in first-add order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal recomputes the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Count returns the sum of quantities, not the number of distinct lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
