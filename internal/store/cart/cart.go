package cart

import (
	"errors"
	"sync"
)

var ErrEmptyCart = errors.New("cart is empty")

type Item struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// Store keeps one in-memory cart per user. All access goes through a single
// lock so concurrent requests against the same cart cannot lose updates, and
// checkout sees a stable snapshot. Carts live only in process memory.
type Store struct {
	mu    sync.Mutex
	carts map[uint][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[uint][]Item)}
}

// Add appends the item to the user's cart, merging with an existing line for
// the same product by summing quantities.
func (s *Store) Add(userID uint, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]

	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return
		}
	}

	s.carts[userID] = append(items, item)
}

// Items returns a copy of the user's cart.
func (s *Store) Items(userID uint) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	out := make([]Item, len(items))
	copy(out, items)

	return out
}

func (s *Store) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// Checkout runs fn with a snapshot of the user's cart while holding the store
// lock and clears the cart only when fn succeeds. An empty cart fails with
// ErrEmptyCart before fn runs.
func (s *Store) Checkout(userID uint, fn func(items []Item) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]

	if len(items) == 0 {
		return ErrEmptyCart
	}

	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	if err := fn(snapshot); err != nil {
		return err
	}

	delete(s.carts, userID)
	return nil
}
