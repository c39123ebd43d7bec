package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the customer's chosen payment option. The core only records
// the choice and forwards it in the outgoing order message.
type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentMoney  PaymentMethod = "money"
)

// DefaultPaymentMethod is applied to new and cleared carts.
const DefaultPaymentMethod = PaymentPix

var paymentLabels = map[PaymentMethod]string{
	PaymentPix:    "PIX",
	PaymentCredit: "Cartão de Crédito",
	PaymentDebit:  "Cartão de Débito",
	PaymentMoney:  "Dinheiro",
}

// Label returns the Portuguese label used in the outgoing order message.
func (m PaymentMethod) Label() string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid reports whether the method is part of the fixed enumeration.
func (m PaymentMethod) Valid() bool {
	_, ok := paymentLabels[m]
	return ok
}

// RequiresCard reports whether checkout must collect card data for the method.
func (m PaymentMethod) RequiresCard() bool {
	return m == PaymentCredit || m == PaymentDebit
}

// OrderType selects between delivery and counter pickup.
type OrderType string

const (
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
)

// DefaultOrderType is applied to new and cleared carts.
const DefaultOrderType = OrderDelivery

// Valid reports whether the order type is delivery or pickup.
func (t OrderType) Valid() bool {
	return t == OrderDelivery || t == OrderPickup
}

// CartItem is one (product, quantity) line. Name and unit price are frozen at
// the moment the line is created so totals cannot drift if catalog data
// changes mid-session.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is the frozen unit price times the quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the session-scoped selection of items plus order-level choices.
// Lines keep insertion order; product ids are unique within a cart.
type Cart struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	Observations  string        `json:"observations,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	OrderType     OrderType     `json:"orderType"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of frozen unit price times quantity over all lines. The
// delivery fee is not included.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
