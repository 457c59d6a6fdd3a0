package cart

import (
	"github.com/urbx/storefront/internal/catalog"
)

// Key identifies a cart line by the full variant tuple, so distinct
// size/color selections of one product occupy independent lines.
type Key struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type Line struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

func (l Line) Key() Key {
	return Key{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// Cart holds the lines of one session. All mutation happens synchronously
// inside a single user-triggered request.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges into an existing line for the same variant key, otherwise
// appends a quantity-1 line. Price and image are resolved once, at add time.
func (c *Cart) Add(p catalog.Product, v catalog.Variant) (Line, error) {
	resolved, err := catalog.Resolve(p, v)
	if err != nil {
		return Line{}, err
	}

	key := Key{ProductID: p.ID, Size: v.Size, Color: v.Color}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity++
			return c.lines[i], nil
		}
	}

	line := Line{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     resolved.Image,
		Category:  p.Category,
		Price:     resolved.Price,
		Quantity:  1,
		Size:      v.Size,
		Color:     v.Color,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// SetQuantity clamps negative quantities to 0; quantity 0 removes the line.
// Reports whether a line with the given key existed.
func (c *Cart) SetQuantity(key Key, quantity int) bool {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		return c.Remove(key)
	}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Remove(key Key) bool {
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is recomputed on every read.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count is the total quantity across lines.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.lines = nil
}
