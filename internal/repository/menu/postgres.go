package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// productDetails groups the structured menu metadata stored in one JSONB
// column.
type productDetails struct {
	DetailedDescription string              `json:"detailedDescription,omitempty"`
	Tags                []domain.Tag        `json:"tags,omitempty"`
	Ingredients         []domain.Ingredient `json:"ingredients,omitempty"`
	Allergens           []string            `json:"allergens,omitempty"`
	Nutrition           domain.Nutrition    `json:"nutrition"`
	Images              []string            `json:"images,omitempty"`
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), price::text, original_price::text,
       category, details, preparation_time, spice_level, featured, available,
       stock, max_quantity
FROM products
ORDER BY position
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("menu repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var (
			p          domain.Product
			price      string
			original   *string
			rawDetails []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &original,
			&p.Category, &rawDetails, &p.PreparationTime, &p.SpiceLevel,
			&p.Featured, &p.Available, &p.Stock, &p.MaxQuantity); err != nil {
			return nil, err
		}

		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("product %s: bad price %q: %w", p.ID, price, err)
		}
		if original != nil {
			op, err := decimal.NewFromString(*original)
			if err != nil {
				return nil, fmt.Errorf("product %s: bad original price %q: %w", p.ID, *original, err)
			}
			p.OriginalPrice = &op
		}

		var details productDetails
		if len(rawDetails) > 0 {
			if err := json.Unmarshal(rawDetails, &details); err != nil {
				return nil, fmt.Errorf("product %s: bad details: %w", p.ID, err)
			}
		}
		p.DetailedDescription = details.DetailedDescription
		p.Tags = details.Tags
		p.Ingredients = details.Ingredients
		p.Allergens = details.Allergens
		p.Nutrition = details.Nutrition
		p.Images = details.Images

		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("menu repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("menu repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product, position int) error {
	details, err := json.Marshal(productDetails{
		DetailedDescription: product.DetailedDescription,
		Tags:                product.Tags,
		Ingredients:         product.Ingredients,
		Allergens:           product.Allergens,
		Nutrition:           product.Nutrition,
		Images:              product.Images,
	})
	if err != nil {
		return fmt.Errorf("marshal details for %s: %w", product.ID, err)
	}

	var original *string
	if product.OriginalPrice != nil {
		s := product.OriginalPrice.String()
		original = &s
	}

	const q = `
INSERT INTO products (id, name, description, price, original_price, category,
                      details, preparation_time, spice_level, featured,
                      available, stock, max_quantity, position)
VALUES ($1, $2, NULLIF($3, ''), $4::numeric, $5::numeric, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    category = EXCLUDED.category,
    details = EXCLUDED.details,
    preparation_time = EXCLUDED.preparation_time,
    spice_level = EXCLUDED.spice_level,
    featured = EXCLUDED.featured,
    available = EXCLUDED.available,
    stock = EXCLUDED.stock,
    max_quantity = EXCLUDED.max_quantity,
    position = EXCLUDED.position
`
	_, err = r.pool.Exec(ctx, q, product.ID, product.Name, product.Description,
		product.Price.String(), original, string(product.Category), details,
		product.PreparationTime, product.SpiceLevel, product.Featured,
		product.Available, product.Stock, product.MaxQuantity, position)
	if err != nil {
		r.logger.Printf("menu repo: upsert id=%s error=%v", product.ID, err)
		return err
	}
	r.logger.Printf("menu repo: upsert id=%s position=%d", product.ID, position)
	return nil
}
