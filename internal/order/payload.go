// Package order turns a finished cart into the deterministic WhatsApp
// message handed to the store operator, and the deep link that carries it.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

// FeePolicy decides the delivery fee: the fixed fee for delivery orders, zero
// for pickup.
type FeePolicy struct {
	DeliveryFee decimal.Decimal
}

// Fee returns the fee applied to the given order type.
func (p FeePolicy) Fee(orderType domain.OrderType) decimal.Decimal {
	if orderType == domain.OrderDelivery {
		return p.DeliveryFee
	}
	return decimal.Zero
}

// Line is one item of the serialized order, in cart insertion order.
type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// Payload is the immutable value derived from a cart snapshot. Identical
// snapshots produce byte-identical messages.
type Payload struct {
	Lines        []Line          `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	Total        decimal.Decimal `json:"total"`
	PaymentLabel string          `json:"paymentLabel"`
	Observations string          `json:"observations,omitempty"`
}

// Build computes the order payload from a cart snapshot. It refuses to
// produce a degenerate order for an empty cart.
func Build(cart domain.Cart, policy FeePolicy) (Payload, error) {
	if cart.Empty() {
		return Payload{}, domain.ErrEmptyCart
	}

	payload := Payload{
		Lines:        make([]Line, 0, len(cart.Items)),
		PaymentLabel: cart.PaymentMethod.Label(),
		Observations: cart.Observations,
	}

	for _, item := range cart.Items {
		payload.Lines = append(payload.Lines, Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Round(2),
			Total:     item.LineTotal().Round(2),
		})
	}

	payload.Subtotal = cart.Subtotal().Round(2)
	payload.DeliveryFee = policy.Fee(cart.OrderType).Round(2)
	payload.Total = payload.Subtotal.Add(payload.DeliveryFee).Round(2)
	return payload, nil
}

// Field labels of the outgoing message. The receiving operator parses the
// text by these exact labels, so wording and order must not change.
const (
	headerLabel       = "*🛵 PEDIDO - BURGERDELÍCIA*"
	itemsLabel        = "*📋 ITENS DO PEDIDO:*"
	valuesLabel       = "*💰 VALORES:*"
	paymentLabel      = "*💳 FORMA DE PAGAMENTO:*"
	observationsLabel = "*📝 OBSERVAÇÕES:*"
	footerLabel       = "*📍 INFORMAÇÕES IMPORTANTES:*"
)

var footerLines = []string{
	"• Entregamos em até 30 minutos",
	"• Aceitamos troco para até R$ 50,00",
	"• Pedido mínimo: R$ 20,00",
}

const closingLine = "_*Por favor, confirme seu endereço de entrega no chat*_"

// Message renders the payload as the plain-text order message: item list,
// monetary breakdown, payment method, optional observations, informational
// footer.
func (p Payload) Message() string {
	var b strings.Builder

	b.WriteString(headerLabel + "\n\n")
	b.WriteString(itemsLabel + "\n\n")

	for i, line := range p.Lines {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, line.Name)
		fmt.Fprintf(&b, "Quantidade: %dx\n", line.Quantity)
		fmt.Fprintf(&b, "Preço: R$ %s\n", line.UnitPrice.StringFixed(2))
		fmt.Fprintf(&b, "Subtotal: R$ %s\n\n", line.Total.StringFixed(2))
	}

	b.WriteString(valuesLabel + "\n")
	fmt.Fprintf(&b, "Subtotal: R$ %s\n", p.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Taxa de Entrega: R$ %s\n", p.DeliveryFee.StringFixed(2))
	fmt.Fprintf(&b, "*Total: R$ %s*\n\n", p.Total.StringFixed(2))

	b.WriteString(paymentLabel + "\n")
	b.WriteString(p.PaymentLabel + "\n\n")

	if p.Observations != "" {
		b.WriteString(observationsLabel + "\n")
		b.WriteString(p.Observations + "\n\n")
	}

	b.WriteString(footerLabel + "\n")
	for _, line := range footerLines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + closingLine)

	return b.String()
}

// Link builds the wa.me deep link with the message percent-encoded into the
// text parameter. Newlines and reserved characters are escaped so the
// receiving channel reconstructs the text exactly.
func (p Payload) Link(whatsappNumber string) string {
	number := strings.TrimPrefix(strings.TrimSpace(whatsappNumber), "+")
	encoded := strings.ReplaceAll(url.QueryEscape(p.Message()), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
