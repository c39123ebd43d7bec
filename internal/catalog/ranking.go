package catalog

import "burgerdelicia/internal/domain"

// RankingProvider supplies the reference popularity ranking used by the
// popularity sort and the best-sellers listing. The source of the ranking can
// vary (fixed list, sales data) without touching the sort logic.
type RankingProvider interface {
	// Ranking returns product ids from most to least popular. Products not
	// listed keep their relative catalog order after the ranked ones.
	Ranking() []string
}

// StaticRanking is a fixed reference ranking.
type StaticRanking []string

func (r StaticRanking) Ranking() []string {
	return r
}

// DefaultRanking mirrors the house best-sellers list.
var DefaultRanking = StaticRanking{
	"classic-burger",
	"double-cheese-bacon",
	"brownie-com-sorvete",
	"batata-frita-crocante",
	"combo-familia",
}

// rankIndex maps ranked product ids to their position.
func (s *Store) rankIndex() map[string]int {
	ids := s.ranking.Ranking()
	rank := make(map[string]int, len(ids))
	for pos, id := range ids {
		rank[id] = pos
	}
	return rank
}

// BestSellers resolves the ranking against the catalog, skipping ids that are
// not (or no longer) on the menu.
func (s *Store) BestSellers() []domain.Product {
	var out []domain.Product
	for _, id := range s.ranking.Ranking() {
		if idx, ok := s.byID[id]; ok {
			out = append(out, s.products[idx])
		}
	}
	return out
}

// Recommend suggests up to limit available products from the same category,
// excluding the product itself, in catalog order.
func (s *Store) Recommend(productID string, limit int) ([]domain.Product, error) {
	product, err := s.ByID(productID)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, idx := range s.byCategory[product.Category] {
		p := s.products[idx]
		if p.ID == productID || !p.Available {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
