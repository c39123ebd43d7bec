package domain

import "github.com/shopspring/decimal"

// CategoryInfo is the display metadata of a menu section.
type CategoryInfo struct {
	Key         Category `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Featured    bool     `json:"featured"`
}

var categoryDescriptions = map[Category]string{
	CategoryLanches:         "Hambúrgueres premium com blends exclusivos",
	CategoryBebidas:         "Refrigerantes, sucos naturais e cervejas especiais",
	CategorySobremesas:      "Doces irresistíveis para finalizar com chave de ouro",
	CategoryAcompanhamentos: "Porções para compartilhar momentos especiais",
	CategoryCombos:          "Combinações perfeitas com economia garantida",
	CategoryVegetarianos:    "Sabor e qualidade para todos os paladares",
	CategoryKids:            "Divertido e saboroso para os pequenos",
}

var featuredCategories = map[Category]bool{
	CategoryLanches:    true,
	CategorySobremesas: true,
	CategoryCombos:     true,
}

// Info returns the display metadata of the category.
func (c Category) Info() CategoryInfo {
	return CategoryInfo{
		Key:         c,
		Label:       c.Label(),
		Description: categoryDescriptions[c],
		Featured:    featuredCategories[c],
	}
}

// OpeningHours describes when the store operates; delivery closes earlier than
// the counter.
type OpeningHours struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
	Delivery string `json:"delivery"`
}

// DeliveryPolicy carries the order-value rules advertised to customers. The
// actual fee charged per order comes from configuration.
type DeliveryPolicy struct {
	MinOrder              decimal.Decimal `json:"minOrder"`
	FreeDeliveryThreshold decimal.Decimal `json:"freeDeliveryThreshold"`
	EstimatedTime         string          `json:"estimatedTime"`
	RadiusKM              int             `json:"radiusKm"`
}

// RestaurantInfo is the static storefront identity.
type RestaurantInfo struct {
	Name     string         `json:"name"`
	Slogan   string         `json:"slogan"`
	Address  string         `json:"address"`
	Phone    string         `json:"phone"`
	Email    string         `json:"email"`
	Hours    OpeningHours   `json:"hours"`
	Delivery DeliveryPolicy `json:"delivery"`
}

// Restaurant returns the BurgerDelícia storefront identity.
func Restaurant() RestaurantInfo {
	return RestaurantInfo{
		Name:    "BurgerDelícia",
		Slogan:  "Sabor que Conquista, Qualidade que Encanta!",
		Address: "Rua dos Sabores, 123 - Centro, São Paulo - SP",
		Phone:   "(11) 99999-9999",
		Email:   "contato@burgerdelicia.com.br",
		Hours: OpeningHours{
			Weekdays: "11:00 - 23:00",
			Weekends: "11:00 - 00:00",
			Delivery: "11:00 - 22:30",
		},
		Delivery: DeliveryPolicy{
			MinOrder:              decimal.New(2500, -2),
			FreeDeliveryThreshold: decimal.New(4500, -2),
			EstimatedTime:         "30-45min",
			RadiusKM:              8,
		},
	}
}
