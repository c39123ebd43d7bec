package menu

import (
	"context"

	"burgerdelicia/internal/domain"
)

// Repository supplies product records from the menu database. The core reads
// the catalog once at startup; Upsert exists for the seed and import tools.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Upsert(ctx context.Context, product domain.Product, position int) error
}
