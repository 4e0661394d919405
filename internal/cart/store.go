package cart

import (
	"sync"

	"allergysafe-be/internal/catalog"
	"allergysafe-be/internal/money"
)

// Store is the in-memory cart state container. Items keep their first-added
// order; adding an already-present product merges by incrementing its
// quantity. Nothing is persisted; a restart starts from an empty cart.
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{}
}

// AddItem appends a new line item with quantity 1, or bumps the quantity of
// the existing line for the same product id.
func (s *Store) AddItem(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, LineItem{Product: p, Quantity: 1})
}

// RemoveItem drops the line item for the given product id. Removing an absent
// id is a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the current line items.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity over all items.
func (s *Store) TotalPrice() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Amount
	for _, li := range s.items {
		total += li.Subtotal()
	}
	return total
}

// Len is the number of distinct line items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
