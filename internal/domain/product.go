package domain

import "github.com/shopspring/decimal"

// Category is the fixed menu section a product belongs to.
type Category string

const (
	CategoryLanches         Category = "lanches"
	CategoryBebidas         Category = "bebidas"
	CategorySobremesas      Category = "sobremesas"
	CategoryAcompanhamentos Category = "acompanhamentos"
	CategoryCombos          Category = "combos"
	CategoryVegetarianos    Category = "vegetarianos"
	CategoryKids            Category = "kids"
)

// Categories lists all menu sections in display order.
func Categories() []Category {
	return []Category{
		CategoryLanches,
		CategoryBebidas,
		CategorySobremesas,
		CategoryAcompanhamentos,
		CategoryCombos,
		CategoryVegetarianos,
		CategoryKids,
	}
}

var categoryLabels = map[Category]string{
	CategoryLanches:         "Lanches Artesanais",
	CategoryBebidas:         "Bebidas",
	CategorySobremesas:      "Sobremesas",
	CategoryAcompanhamentos: "Acompanhamentos",
	CategoryCombos:          "Combos Exclusivos",
	CategoryVegetarianos:    "Opções Vegetarianas",
	CategoryKids:            "Menu Kids",
}

// Label returns the human-readable name of the category, falling back to the
// raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether the category is part of the fixed enumeration.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Tag is a menu badge from the controlled vocabulary (popular, vegano, ...).
type Tag string

const (
	TagPopular     Tag = "popular"
	TagNovo        Tag = "novo"
	TagVegano      Tag = "vegano"
	TagSaudavel    Tag = "saudavel"
	TagPicante     Tag = "picante"
	TagPremium     Tag = "premium"
	TagArtesanal   Tag = "artesanal"
	TagEconomico   Tag = "economico"
	TagLimitado    Tag = "limitado"
	TagNatural     Tag = "natural"
	TagKids        Tag = "kids"
	TagGlutenFree  Tag = "glutenFree"
	TagLactoseFree Tag = "lactoseFree"
)

// Ingredient is a single component of a product recipe.
type Ingredient struct {
	Name     string `json:"name"`
	Allergen bool   `json:"allergen"`
}

// Nutrition holds the per-serving nutrition facts. All values default to zero
// when the menu data omits them.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Sodium   int `json:"sodium"`
}

// Product is one purchasable menu entry. Products are loaded once at startup
// and never mutated afterwards; stock numbers are read-only reference data.
type Product struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description,omitempty"`
	DetailedDescription string           `json:"detailedDescription,omitempty"`
	Price               decimal.Decimal  `json:"price"`
	OriginalPrice       *decimal.Decimal `json:"originalPrice,omitempty"`
	Category            Category         `json:"category"`
	Tags                []Tag            `json:"tags,omitempty"`
	Ingredients         []Ingredient     `json:"ingredients,omitempty"`
	Allergens           []string         `json:"allergens,omitempty"`
	Nutrition           Nutrition        `json:"nutrition"`
	PreparationTime     int              `json:"preparationTime"`
	SpiceLevel          int              `json:"spiceLevel"`
	Featured            bool             `json:"featured"`
	Available           bool             `json:"available"`
	Stock               int              `json:"stock"`
	MaxQuantity         int              `json:"maxQuantity"`
	Images              []string         `json:"images,omitempty"`
}

// OnSale reports whether the product carries a crossed-out original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag Tag) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
