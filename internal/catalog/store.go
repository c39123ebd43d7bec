// Package catalog holds the immutable product registry and the stateless
// query functions over it: filtering, sorting, search, aggregate statistics,
// recommendations and order validation.
package catalog

import (
	"fmt"

	"burgerdelicia/internal/domain"
)

// defaultMaxQuantity caps a single order line when the menu entry does not
// set its own limit.
const defaultMaxQuantity = 10

// Store is the process-wide product registry. It is built once from the
// loaded menu, keeps catalog insertion order, and is never mutated afterwards,
// so it is safe for concurrent readers.
type Store struct {
	products   []domain.Product
	byID       map[string]int
	byCategory map[domain.Category][]int
	byTag      map[domain.Tag][]int
	featured   []int
	discounted []int
	ranking    RankingProvider
}

// NewStore validates the loaded products and builds the derived indices.
// Every product needs a unique id, a name, a positive price and a known
// category; optional fields get explicit defaults. A nil ranking falls back
// to the house best-sellers list.
func NewStore(products []domain.Product, ranking RankingProvider) (*Store, error) {
	if ranking == nil {
		ranking = DefaultRanking
	}
	s := &Store{
		ranking:    ranking,
		products:   make([]domain.Product, 0, len(products)),
		byID:       make(map[string]int, len(products)),
		byCategory: make(map[domain.Category][]int),
		byTag:      make(map[domain.Tag][]int),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: missing id", p.Name)
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("product %q: duplicate id %s", p.Name, p.ID)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %s: missing name", p.ID)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("product %s: price must be positive", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %s: negative stock", p.ID)
		}
		if p.MaxQuantity <= 0 {
			p.MaxQuantity = defaultMaxQuantity
		}

		idx := len(s.products)
		s.products = append(s.products, p)
		s.byID[p.ID] = idx
		s.byCategory[p.Category] = append(s.byCategory[p.Category], idx)
		for _, tag := range p.Tags {
			s.byTag[tag] = append(s.byTag[tag], idx)
		}
		if p.Featured {
			s.featured = append(s.featured, idx)
		}
		if p.OnSale() {
			s.discounted = append(s.discounted, idx)
		}
	}

	return s, nil
}

// All returns every product in catalog insertion order.
func (s *Store) All() []domain.Product {
	return s.copyOf(nil)
}

// ByID resolves a single product.
func (s *Store) ByID(id string) (domain.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.products[idx], nil
}

// ByCategory returns the products of one menu section in insertion order.
func (s *Store) ByCategory(category domain.Category) []domain.Product {
	return s.copyOf(s.byCategory[category])
}

// ByTag returns the products carrying the given tag in insertion order.
func (s *Store) ByTag(tag domain.Tag) []domain.Product {
	return s.copyOf(s.byTag[tag])
}

// Featured returns the highlighted products in insertion order.
func (s *Store) Featured() []domain.Product {
	return s.copyOf(s.featured)
}

// Discounted returns the products with a crossed-out original price.
func (s *Store) Discounted() []domain.Product {
	return s.copyOf(s.discounted)
}

// Len is the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// copyOf materializes the index positions into a fresh slice so callers can
// never mutate the registry. A nil index means the whole catalog.
func (s *Store) copyOf(indices []int) []domain.Product {
	if indices == nil {
		out := make([]domain.Product, len(s.products))
		copy(out, s.products)
		return out
	}
	out := make([]domain.Product, 0, len(indices))
	for _, idx := range indices {
		out = append(out, s.products[idx])
	}
	return out
}
