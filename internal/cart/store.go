package cart

import (
	"sync"

	"github.com/spf13/cast"

	"tableside/internal/domain"
)

// Store holds the in-progress order for one terminal. Insertion order is
// preserved; repeat adds bump the existing entry in place. Contents never
// survive a restart.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the product in the cart, incrementing the existing
// entry if the product is already there.
func (s *Store) Add(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
}

// Remove drops the entry entirely. Absent ids are a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

func (s *Store) remove(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Decrease takes one unit off the entry; at quantity 1 the entry is removed,
// so a present entry always has quantity >= 1. Absent ids are a no-op.
func (s *Store) Decrease(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			} else {
				s.remove(productID)
			}
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalCount is the sum of quantities across all entries.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalAmount is the sum of price x quantity. A missing or non-numeric price
// contributes 0 rather than failing; partially populated products are normal
// with older backends.
func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += cast.ToFloat64(item.Price) * float64(item.Quantity)
	}
	return total
}
