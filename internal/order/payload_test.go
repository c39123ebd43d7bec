package order

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCart() domain.Cart {
	return domain.Cart{
		ID: "cart-1",
		Items: []domain.CartItem{
			{ProductID: "classic-burger", Name: "Classic Burger", UnitPrice: dec("24.90"), Quantity: 2},
			{ProductID: "suco-laranja-500", Name: "Suco de Laranja", UnitPrice: dec("12.50"), Quantity: 1},
		},
		Observations:  "Sem cebola no burger",
		PaymentMethod: domain.PaymentPix,
		OrderType:     domain.OrderDelivery,
	}
}

func testPolicy() FeePolicy {
	return FeePolicy{DeliveryFee: dec("5.00")}
}

func TestBuildComputesTotals(t *testing.T) {
	payload, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := Payload{
		Lines: []Line{
			{Name: "Classic Burger", Quantity: 2, UnitPrice: dec("24.90"), Total: dec("49.80")},
			{Name: "Suco de Laranja", Quantity: 1, UnitPrice: dec("12.50"), Total: dec("12.50")},
		},
		Subtotal:     dec("62.30"),
		DeliveryFee:  dec("5.00"),
		Total:        dec("67.30"),
		PaymentLabel: "PIX",
		Observations: "Sem cebola no burger",
	}
	if diff := cmp.Diff(want, payload, decimalComparer); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPickupHasZeroFee(t *testing.T) {
	cart := testCart()
	cart.OrderType = domain.OrderPickup

	payload, err := Build(cart, testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !payload.DeliveryFee.IsZero() {
		t.Fatalf("pickup must have zero fee, got %s", payload.DeliveryFee)
	}
	if !payload.Total.Equal(dec("62.30")) {
		t.Fatalf("expected total 62.30, got %s", payload.Total)
	}
}

func TestBuildRefusesEmptyCart(t *testing.T) {
	_, err := Build(domain.Cart{ID: "cart-1"}, testPolicy())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestMessageFormat(t *testing.T) {
	payload, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := strings.Join([]string{
		"*🛵 PEDIDO - BURGERDELÍCIA*",
		"",
		"*📋 ITENS DO PEDIDO:*",
		"",
		"*1. Classic Burger*",
		"Quantidade: 2x",
		"Preço: R$ 24.90",
		"Subtotal: R$ 49.80",
		"",
		"*2. Suco de Laranja*",
		"Quantidade: 1x",
		"Preço: R$ 12.50",
		"Subtotal: R$ 12.50",
		"",
		"*💰 VALORES:*",
		"Subtotal: R$ 62.30",
		"Taxa de Entrega: R$ 5.00",
		"*Total: R$ 67.30*",
		"",
		"*💳 FORMA DE PAGAMENTO:*",
		"PIX",
		"",
		"*📝 OBSERVAÇÕES:*",
		"Sem cebola no burger",
		"",
		"*📍 INFORMAÇÕES IMPORTANTES:*",
		"• Entregamos em até 30 minutos",
		"• Aceitamos troco para até R$ 50,00",
		"• Pedido mínimo: R$ 20,00",
		"",
		"_*Por favor, confirme seu endereço de entrega no chat*_",
	}, "\n")

	if got := payload.Message(); got != want {
		t.Fatalf("message mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestMessageOmitsEmptyObservations(t *testing.T) {
	cart := testCart()
	cart.Observations = ""

	payload, err := Build(cart, testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(payload.Message(), observationsLabel) {
		t.Fatal("message must not carry an empty observations block")
	}
}

func TestMessageIsDeterministic(t *testing.T) {
	first, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if first.Message() != second.Message() {
		t.Fatal("identical cart snapshots must render byte-identical messages")
	}
}

func TestLinkRoundTrips(t *testing.T) {
	payload, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	link := payload.Link("+5511999999999")
	prefix := "https://wa.me/5511999999999?text="
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	encoded := strings.TrimPrefix(link, prefix)
	if strings.ContainsAny(encoded, " \n+*") {
		t.Fatalf("reserved characters left unescaped: %s", encoded)
	}

	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if decoded != payload.Message() {
		t.Fatalf("decoded text differs from the message:\n%s", decoded)
	}
}

func TestParseInvertsMessage(t *testing.T) {
	payload, err := Build(testCart(), testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	parsed, err := Parse(payload.Message())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(payload, parsed, decimalComparer); diff != "" {
		t.Fatalf("round trip mismatch (-built +parsed):\n%s", diff)
	}
}

func TestParseWithoutObservations(t *testing.T) {
	cart := testCart()
	cart.Observations = ""

	payload, err := Build(cart, testPolicy())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	parsed, err := Parse(payload.Message())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Observations != "" {
		t.Fatalf("expected no observations, got %q", parsed.Observations)
	}
	if diff := cmp.Diff(payload, parsed, decimalComparer); diff != "" {
		t.Fatalf("round trip mismatch (-built +parsed):\n%s", diff)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("bom dia, quero um lanche"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFeePolicy(t *testing.T) {
	policy := testPolicy()
	if !policy.Fee(domain.OrderDelivery).Equal(dec("5.00")) {
		t.Fatalf("expected delivery fee 5.00, got %s", policy.Fee(domain.OrderDelivery))
	}
	if !policy.Fee(domain.OrderPickup).IsZero() {
		t.Fatalf("expected zero pickup fee, got %s", policy.Fee(domain.OrderPickup))
	}
}
