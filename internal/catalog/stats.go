package catalog

import (
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

// Stats summarizes the whole catalog. Missing optional fields count as zero.
type Stats struct {
	TotalProducts      int             `json:"totalProducts"`
	AvailableProducts  int             `json:"availableProducts"`
	FeaturedProducts   int             `json:"featuredProducts"`
	DiscountedProducts int             `json:"discountedProducts"`
	Categories         int             `json:"categories"`
	AveragePrice       decimal.Decimal `json:"averagePrice"`
	TotalCalories      int             `json:"totalCalories"`
	TotalStock         int             `json:"totalStock"`
	TotalValue         decimal.Decimal `json:"totalValue"`
}

// Stats aggregates the catalog-wide counts and price totals. Average price
// and total stock value are rounded half-up to 2 decimals.
func (s *Store) Stats() Stats {
	stats := Stats{
		TotalProducts: len(s.products),
		Categories:    len(domain.Categories()),
	}

	priceSum := decimal.Zero
	value := decimal.Zero
	for _, p := range s.products {
		if p.Available {
			stats.AvailableProducts++
		}
		if p.Featured {
			stats.FeaturedProducts++
		}
		if p.OnSale() {
			stats.DiscountedProducts++
		}
		stats.TotalCalories += p.Nutrition.Calories
		stats.TotalStock += p.Stock
		priceSum = priceSum.Add(p.Price)
		value = value.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	if len(s.products) > 0 {
		stats.AveragePrice = priceSum.DivRound(decimal.NewFromInt(int64(len(s.products))), 2)
	}
	stats.TotalValue = value.Round(2)
	return stats
}

// CategoryStats describes one menu section.
type CategoryStats struct {
	Category     domain.Category `json:"category"`
	Label        string          `json:"label"`
	ProductCount int             `json:"productCount"`
	TotalStock   int             `json:"totalStock"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// StatsByCategory summarizes each menu section in display order, including
// empty ones.
func (s *Store) StatsByCategory() []CategoryStats {
	out := make([]CategoryStats, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		cs := CategoryStats{Category: category, Label: category.Label()}
		priceSum := decimal.Zero
		for _, idx := range s.byCategory[category] {
			p := s.products[idx]
			cs.ProductCount++
			cs.TotalStock += p.Stock
			priceSum = priceSum.Add(p.Price)
		}
		if cs.ProductCount > 0 {
			cs.AveragePrice = priceSum.DivRound(decimal.NewFromInt(int64(cs.ProductCount)), 2)
		}
		out = append(out, cs)
	}
	return out
}

// LowStock lists products with stock at or below the threshold, excluding the
// ones already out of stock.
func (s *Store) LowStock(threshold int) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Stock > 0 && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// OutOfStock lists products that cannot be ordered at all.
func (s *Store) OutOfStock() []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if !p.Available || p.Stock == 0 {
			out = append(out, p)
		}
	}
	return out
}
