package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"burgerdelicia/internal/domain"
)

// Criteria is a structured set of optional predicates. All supplied
// predicates combine conjunctively; the tag predicate matches when any of the
// requested tags is present. A zero Criteria passes the whole catalog.
type Criteria struct {
	Category          domain.Category
	Tags              []domain.Tag
	MaxPrice          *decimal.Decimal
	MaxCalories       *int
	MaxSpiceLevel     *int
	Available         *bool
	ExcludedAllergens []string
	Search            string
}

// Filter applies the criteria over the whole catalog, keeping insertion order.
func (s *Store) Filter(criteria Criteria) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if matches(p, criteria) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, c Criteria) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if len(c.Tags) > 0 && !hasAnyTag(p, c.Tags) {
		return false
	}
	if c.MaxPrice != nil && p.Price.GreaterThan(*c.MaxPrice) {
		return false
	}
	if c.MaxCalories != nil && p.Nutrition.Calories > *c.MaxCalories {
		return false
	}
	if c.MaxSpiceLevel != nil && p.SpiceLevel > *c.MaxSpiceLevel {
		return false
	}
	if c.Available != nil && p.Available != *c.Available {
		return false
	}
	for _, allergen := range c.ExcludedAllergens {
		for _, has := range p.Allergens {
			if strings.EqualFold(allergen, has) {
				return false
			}
		}
	}
	if c.Search != "" && !matchesSearch(p, c.Search) {
		return false
	}
	return true
}

func hasAnyTag(p domain.Product, tags []domain.Tag) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

// matchesSearch does a case-insensitive substring match against name,
// description, category label, tags and ingredient names.
func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category.Label()), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(string(tag)), q) {
			return true
		}
	}
	for _, ing := range p.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

// SortKey selects a deterministic ordering for product lists.
type SortKey string

const (
	SortName            SortKey = "name"
	SortPriceLow        SortKey = "price-low"
	SortPriceHigh       SortKey = "price-high"
	SortCaloriesLow     SortKey = "calories-low"
	SortCaloriesHigh    SortKey = "calories-high"
	SortPreparationTime SortKey = "preparation-time"
	SortPopularity      SortKey = "popularity"
)

// ParseSortKey maps a raw query value to a SortKey, defaulting to name order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortCaloriesLow, SortCaloriesHigh,
		SortPreparationTime, SortPopularity:
		return SortKey(raw)
	default:
		return SortName
	}
}

// Sort returns a sorted copy of the list. Every sort is stable, so ties keep
// the input (catalog insertion) order and repeated calls on identical input
// produce identical output. Name order uses pt-BR collation.
func (s *Store) Sort(list []domain.Product, key SortKey) []domain.Product {
	sorted := make([]domain.Product, len(list))
	copy(sorted, list)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case SortCaloriesLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Nutrition.Calories < sorted[j].Nutrition.Calories
		})
	case SortCaloriesHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Nutrition.Calories > sorted[j].Nutrition.Calories
		})
	case SortPreparationTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PreparationTime < sorted[j].PreparationTime
		})
	case SortPopularity:
		rank := s.rankIndex()
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, iRanked := rank[sorted[i].ID]
			rj, jRanked := rank[sorted[j].ID]
			switch {
			case iRanked && jRanked:
				return ri < rj
			case iRanked:
				return true
			case jRanked:
				return false
			default:
				return false
			}
		})
	default:
		collator := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}
