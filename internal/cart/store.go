// Package cart owns the session-scoped carts and the command interface that
// mutates them. All mutation goes through explicit actions; nothing else in
// the process holds a mutable reference to a cart.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"burgerdelicia/internal/domain"
)

// Store keeps every session's cart in memory. Each browsing session owns an
// independent cart; nothing is shared across them and nothing survives the
// process.
type Store struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]domain.Cart)}
}

// Create registers a new empty cart with the order-level defaults applied.
func (s *Store) Create() domain.Cart {
	cart := domain.Cart{
		ID:            uuid.NewString(),
		PaymentMethod: domain.DefaultPaymentMethod,
		OrderType:     domain.DefaultOrderType,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = cart
	return snapshot(cart)
}

// Get returns a snapshot of the cart.
func (s *Store) Get(id string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return domain.Cart{}, domain.ErrNotFound
	}
	return snapshot(cart), nil
}

// Mutate runs fn against a working copy of the cart and commits the copy only
// when fn succeeds, so a failed mutation leaves the stored cart untouched and
// no partial state is ever observable.
func (s *Store) Mutate(id string, fn func(*domain.Cart) error) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	if !ok {
		return domain.Cart{}, domain.ErrNotFound
	}

	working := snapshot(cart)
	if err := fn(&working); err != nil {
		return domain.Cart{}, err
	}

	s.carts[id] = working
	return snapshot(working), nil
}

// Delete removes the cart entirely.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.carts, id)
	return nil
}

// snapshot deep-copies a cart so callers never alias the stored line slice.
func snapshot(cart domain.Cart) domain.Cart {
	out := cart
	out.Items = make([]domain.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
