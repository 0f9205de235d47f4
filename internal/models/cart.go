// internal/models/cart.go
package models

import (
	"errors"
	"sync"
)

// ErrIndexOutOfRange is returned by RemoveAt for indexes outside [0, Count()).
var ErrIndexOutOfRange = errors.New("cart index out of range")

// Cart is an ordered sequence of product references. Duplicates are
// permitted; adding the same product twice yields two entries (quantity by
// repetition). A cart starts empty and lives for the session.
type Cart struct {
	mu        sync.Mutex
	items     []Product
	observers []func(count int)
}

func NewCart() *Cart {
	return &Cart{}
}

// Subscribe registers an observer invoked synchronously with the new entry
// count after every mutation, before the mutating call returns. The badge
// count is therefore never stale.
func (c *Cart) Subscribe(fn func(count int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Add appends a product reference to the end of the cart. It cannot fail.
func (c *Cart) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, p)
	c.notifyLocked()
}

// RemoveAt deletes the entry at index i, preserving the order of the rest.
func (c *Cart) RemoveAt(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notifyLocked()
	return nil
}

// Count reports the number of entries, duplicates included.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns the entries in insertion order. The returned slice is a
// copy; reads never alter the cart.
func (c *Cart) Items() []Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) notifyLocked() {
	for _, fn := range c.observers {
		fn(len(c.items))
	}
}
