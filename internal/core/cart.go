package core

import (
	"fmt"
	"strings"
	"sync"
)

// CartLine is one (product, quantity) row. Quantity is always >= 1 while
// the line is held by a Cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns quantity x unit price.
func (l CartLine) Subtotal() int {
	return l.Quantity * l.Product.Price
}

// Cart is the in-memory owner of a session's cart lines. Lines are kept in
// insertion order and matched by trimmed product name, so two products that
// share a name collapse into one line. All methods are safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart, creating the line if needed.
func (c *Cart) Add(p *Product) error {
	if err := validateCartProduct(p); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.Name); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}
	c.lines = append(c.lines, CartLine{Product: *p, Quantity: 1})
	return nil
}

// Increment behaves exactly like Add.
func (c *Cart) Increment(p *Product) error {
	return c.Add(p)
}

// Decrement takes one unit away and drops the line when it reaches zero.
// A product that is not in the cart is ignored.
func (c *Cart) Decrement(p *Product) error {
	if err := validateCartProduct(p); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(p.Name)
	if i < 0 {
		return nil
	}
	c.lines[i].Quantity--
	if c.lines[i].Quantity <= 0 {
		c.removeAt(i)
	}
	return nil
}

// SetQuantity overwrites the quantity for p. Negative values count as zero
// and zero removes the line.
func (c *Cart) SetQuantity(p *Product, qty int) error {
	if err := validateCartProduct(p); err != nil {
		return err
	}
	if qty < 0 {
		qty = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(p.Name)
	switch {
	case i < 0 && qty > 0:
		c.lines = append(c.lines, CartLine{Product: *p, Quantity: qty})
	case i >= 0 && qty == 0:
		c.removeAt(i)
	case i >= 0:
		c.lines[i].Quantity = qty
	}
	return nil
}

// Remove drops the line holding a product equal to p. Unlike the other
// mutators it compares the whole product value, not just the name.
func (c *Cart) Remove(p *Product) {
	if p == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product == *p {
			c.removeAt(i)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Items returns a point-in-time copy of the lines in insertion order.
func (c *Cart) Items() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalAmount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := 0
	for _, l := range c.lines {
		qty += l.Quantity
	}
	return qty
}

// Snapshot returns lines and both totals computed under a single lock.
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := CartSnapshot{Lines: make([]CartLine, len(c.lines))}
	copy(s.Lines, c.lines)
	for _, l := range c.lines {
		s.TotalAmount += l.Subtotal()
		s.TotalQuantity += l.Quantity
	}
	return s
}

// CartSnapshot is a consistent view of a cart at one instant.
type CartSnapshot struct {
	Lines         []CartLine `json:"items"`
	TotalAmount   int        `json:"total_amount"`
	TotalQuantity int        `json:"total_quantity"`
}

// indexOf must be called with c.mu held.
func (c *Cart) indexOf(name string) int {
	name = strings.TrimSpace(name)
	for i := range c.lines {
		if strings.TrimSpace(c.lines[i].Product.Name) == name {
			return i
		}
	}
	return -1
}

// removeAt must be called with c.mu held.
func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func validateCartProduct(p *Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is empty", ErrInvalidArgument)
	}
	return nil
}

// CartSessions hands out one Cart per session key. It replaces a process-wide
// cart singleton: the composition root owns it and passes it to whoever needs
// a cart.
type CartSessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartSessions() *CartSessions {
	return &CartSessions{carts: make(map[string]*Cart)}
}

// Get returns the cart for key, creating an empty one on first use.
func (s *CartSessions) Get(key string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[key]
	if !ok {
		c = NewCart()
		s.carts[key] = c
	}
	return c
}

// Drop forgets the cart for key.
func (s *CartSessions) Drop(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}
