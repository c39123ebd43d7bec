// Package seed carries the built-in BurgerDelícia menu. The API serves it
// directly when no database is configured; the seed tool loads it into
// Postgres for the database-backed setup.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
	menurepo "burgerdelicia/internal/repository/menu"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func salePrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Menu returns the full menu in catalog order.
func Menu() []domain.Product {
	return []domain.Product{
		{
			ID:                  "classic-burger",
			Name:                "Classic Burger",
			Description:         "Nosso carro-chefe! Pão brioche artesanal, blend 180g de carne Angus, queijo cheddar derretido, alface americana, tomate fresco e molho especial da casa",
			DetailedDescription: "Um clássico atemporal que conquista pelo sabor autêntico. Nosso blend exclusivo de carne Angus é grelhado no ponto perfeito, garantindo suculência e sabor inigualáveis.",
			Price:               price("24.90"),
			OriginalPrice:       salePrice("28.90"),
			Category:            domain.CategoryLanches,
			Featured:            true,
			Tags:                []domain.Tag{domain.TagPopular, domain.TagArtesanal, domain.TagPremium},
			Ingredients: []domain.Ingredient{
				{Name: "Pão Brioche Artesanal", Allergen: true},
				{Name: "Blend Angus 180g"},
				{Name: "Queijo Cheddar", Allergen: true},
				{Name: "Alface Americana"},
				{Name: "Tomate Fresco"},
				{Name: "Molho Especial", Allergen: true},
			},
			Allergens:       []string{"Glúten", "Lactose"},
			Nutrition:       domain.Nutrition{Calories: 520, Protein: 32, Carbs: 45, Fat: 22, Sodium: 890},
			PreparationTime: 12,
			Available:       true,
			Stock:           25,
			MaxQuantity:     5,
		},
		{
			ID:            "double-cheese-bacon",
			Name:          "Double Cheese Bacon",
			Description:   "Para os famintos! Dois blends 180g de carne, double cheddar, bacon crocante, cebola caramelizada e molho barbecue artesanal",
			Price:         price("34.90"),
			OriginalPrice: salePrice("39.90"),
			Category:      domain.CategoryLanches,
			Featured:      true,
			Tags:          []domain.Tag{domain.TagPopular, domain.TagPremium},
			Ingredients: []domain.Ingredient{
				{Name: "Pão Australiano", Allergen: true},
				{Name: "2 Blends Angus 180g"},
				{Name: "Duplo Cheddar", Allergen: true},
				{Name: "Bacon Crocante"},
				{Name: "Cebola Caramelizada"},
			},
			Allergens:       []string{"Glúten", "Lactose"},
			Nutrition:       domain.Nutrition{Calories: 780, Protein: 48, Carbs: 52, Fat: 38, Sodium: 1250},
			PreparationTime: 15,
			SpiceLevel:      1,
			Available:       true,
			Stock:           18,
			MaxQuantity:     3,
		},
		{
			ID:              "veggie-garden",
			Name:            "Veggie Garden",
			Description:     "Hambúrguer de grão de bico e quinoa, abobrinha grelhada, berinjela, rúcula e molho de iogurte com ervas",
			Price:           price("26.90"),
			Category:        domain.CategoryLanches,
			Tags:            []domain.Tag{domain.TagVegano, domain.TagSaudavel},
			Nutrition:       domain.Nutrition{Calories: 320, Protein: 18, Carbs: 42, Fat: 8, Sodium: 420},
			PreparationTime: 14,
			Available:       true,
			Stock:           15,
		},
		{
			ID:              "coca-cola-350",
			Name:            "Coca-Cola 350ml",
			Description:     "Refrigerante gelado na temperatura perfeita para acompanhar seu lanche",
			Price:           price("6.90"),
			Category:        domain.CategoryBebidas,
			Tags:            []domain.Tag{domain.TagPopular},
			Nutrition:       domain.Nutrition{Calories: 140, Carbs: 35, Sodium: 15},
			PreparationTime: 1,
			Available:       true,
			Stock:           50,
		},
		{
			ID:              "suco-laranja-500",
			Name:            "Suco Natural Laranja 500ml",
			Description:     "Suco fresco de laranja espremido na hora",
			Price:           price("12.50"),
			Category:        domain.CategoryBebidas,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagNatural, domain.TagSaudavel},
			Nutrition:       domain.Nutrition{Calories: 90, Protein: 1, Carbs: 20, Sodium: 5},
			PreparationTime: 3,
			Available:       true,
			Stock:           30,
		},
		{
			ID:              "brownie-com-sorvete",
			Name:            "Brownie com Sorvete",
			Description:     "Brownie quente de chocolate 70% cacau com sorvete de baunilha belga e calda de chocolate",
			Price:           price("18.90"),
			OriginalPrice:   salePrice("22.90"),
			Category:        domain.CategorySobremesas,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagPopular, domain.TagPremium},
			Nutrition:       domain.Nutrition{Calories: 420, Protein: 8, Carbs: 58, Fat: 18, Sodium: 120},
			PreparationTime: 8,
			Available:       true,
			Stock:           20,
		},
		{
			ID:              "batata-frita-crocante",
			Name:            "Batata Frita Crocante",
			Description:     "Porção generosa de batata frita crocante temperada com sal marinho e ervas finas",
			Price:           price("14.90"),
			Category:        domain.CategoryAcompanhamentos,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagPopular},
			Nutrition:       domain.Nutrition{Calories: 320, Protein: 4, Carbs: 45, Fat: 14, Sodium: 480},
			PreparationTime: 10,
			Available:       true,
			Stock:           40,
		},
		{
			ID:              "combo-familia",
			Name:            "Combo Família BurgerDelícia",
			Description:     "4 Classic Burgers + 2 Batatas Grandes + 4 Refrigerantes 500ml + 1 Brownie Surpresa",
			Price:           price("119.90"),
			OriginalPrice:   salePrice("149.90"),
			Category:        domain.CategoryCombos,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagPopular, domain.TagEconomico},
			Nutrition:       domain.Nutrition{Calories: 2200, Protein: 140, Carbs: 280, Fat: 90, Sodium: 3200},
			PreparationTime: 25,
			Available:       true,
			Stock:           10,
		},
		{
			ID:              "veggie-supreme",
			Name:            "Veggie Supreme",
			Description:     "Hambúrguer de lentilha, abacate, tomate seco e maionese de castanha",
			Price:           price("28.90"),
			Category:        domain.CategoryVegetarianos,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagVegano, domain.TagSaudavel},
			Nutrition:       domain.Nutrition{Calories: 380, Protein: 22, Carbs: 48, Fat: 12, Sodium: 380},
			PreparationTime: 16,
			Available:       true,
			Stock:           12,
		},
		{
			ID:              "hamburguinho-kids",
			Name:            "Hamburguinho Kids",
			Description:     "Mini hambúrguer com queijo, alface e tomate + batata pequena + suquinho",
			Price:           price("19.90"),
			Category:        domain.CategoryKids,
			Featured:        true,
			Tags:            []domain.Tag{domain.TagKids},
			Nutrition:       domain.Nutrition{Calories: 380, Protein: 16, Carbs: 48, Fat: 12, Sodium: 520},
			PreparationTime: 10,
			Available:       true,
			Stock:           20,
		},
	}
}

// Apply upserts the built-in menu into the repository, preserving catalog
// order. It is idempotent.
func Apply(ctx context.Context, repo menurepo.Repository) error {
	for position, product := range Menu() {
		if err := repo.Upsert(ctx, product, position); err != nil {
			return fmt.Errorf("upsert product %s: %w", product.ID, err)
		}
	}
	return nil
}
