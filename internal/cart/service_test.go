package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"burgerdelicia/internal/domain"
)

type stubResolver struct {
	products map[string]domain.Product
}

func (s *stubResolver) ByID(id string) (domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService() (*Service, *stubResolver) {
	resolver := &stubResolver{products: map[string]domain.Product{
		"burger": {ID: "burger", Name: "Classic Burger", Price: dec("24.90")},
		"suco":   {ID: "suco", Name: "Suco de Laranja", Price: dec("12.50")},
	}}
	return New(NewStore(), resolver), resolver
}

func addAction(productID string, quantity int) UpdateAction {
	return UpdateAction{Action: "addLineItem", ProductID: productID, Quantity: quantity}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if cart.ID == "" {
		t.Fatal("expected a cart id")
	}
	if cart.PaymentMethod != domain.DefaultPaymentMethod || cart.OrderType != domain.DefaultOrderType {
		t.Fatalf("defaults not applied: %+v", cart)
	}
	if cart.TotalItems() != 0 || !cart.Subtotal().IsZero() {
		t.Fatalf("new cart not empty: %+v", cart)
	}
}

func TestAddLineItemMergesQuantity(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 2)}}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 3)}})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(got.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", got.Items[0].Quantity)
	}
	if got.TotalItems() != 5 {
		t.Fatalf("expected 5 total items, got %d", got.TotalItems())
	}
}

func TestAddLineItemFreezesUnitPrice(t *testing.T) {
	svc, resolver := newTestService()
	cart := svc.Create()

	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 1)}}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A catalog price change mid-session must not drift the line.
	p := resolver.products["burger"]
	p.Price = dec("99.90")
	resolver.products["burger"] = p

	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 1)}})
	if err != nil {
		t.Fatalf("merge add: %v", err)
	}
	if !got.Items[0].UnitPrice.Equal(dec("24.90")) {
		t.Fatalf("expected frozen price 24.90, got %s", got.Items[0].UnitPrice)
	}
	if !got.Subtotal().Equal(dec("49.80")) {
		t.Fatalf("expected subtotal 49.80, got %s", got.Subtotal())
	}
}

func TestAddLineItemDefaultsQuantityToOne(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("suco", 0)}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", got.Items[0].Quantity)
	}
}

func TestAddLineItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("pastel", 1)}})
	if err == nil || err.Error() != "product not found" {
		t.Fatalf("expected product not found, got %v", err)
	}
}

func TestChangeLineItemQuantityInPlace(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		addAction("burger", 1),
		addAction("suco", 1),
	}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "changeLineItemQuantity", ProductID: "burger", Quantity: 4},
	}})
	if err != nil {
		t.Fatalf("change: %v", err)
	}
	if got.Items[0].ProductID != "burger" || got.Items[0].Quantity != 4 {
		t.Fatalf("line position or quantity wrong: %+v", got.Items)
	}
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 2)}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "changeLineItemQuantity", ProductID: "burger", Quantity: 0},
	}})
	if err != nil {
		t.Fatalf("change: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected line removed, got %+v", got.Items)
	}
	if got.TotalItems() != 0 || !got.Subtotal().IsZero() {
		t.Fatalf("totals must not include removed items: %+v", got)
	}
}

func TestRemoveLineItem(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{addAction("burger", 1), addAction("suco", 1)}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "removeLineItem", ProductID: "burger"},
	}})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "suco" {
		t.Fatalf("unexpected items after remove: %+v", got.Items)
	}
}

func TestRemoveUnknownLineFails(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "removeLineItem", ProductID: "burger"},
	}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateIsAtomic(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		addAction("burger", 2),
		addAction("pastel", 1), // fails
	}})
	if err == nil {
		t.Fatal("expected error")
	}

	got, err := svc.Get(cart.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("failed update must not leave partial state, got %+v", got.Items)
	}
}

func TestOrderLevelSetters(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "setObservations", Observations: "sem cebola"},
		{Action: "setPaymentMethod", PaymentMethod: "money"},
		{Action: "setOrderType", OrderType: "pickup"},
	}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Observations != "sem cebola" || got.PaymentMethod != domain.PaymentMoney || got.OrderType != domain.OrderPickup {
		t.Fatalf("setters not applied: %+v", got)
	}
}

func TestSettersRejectUnknownValues(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "setPaymentMethod", PaymentMethod: "cheque"},
	}}); err == nil {
		t.Fatal("expected payment method error")
	}
	if _, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		{Action: "setOrderType", OrderType: "teleporte"},
	}}); err == nil {
		t.Fatal("expected order type error")
	}
}

func TestUnsupportedAction(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{{Action: "recalculate"}}})
	if err == nil || err.Error() != "unsupported action" {
		t.Fatalf("expected unsupported action, got %v", err)
	}
}

func TestUpdateRequiresActions(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{})
	if err == nil || err.Error() != "actions required" {
		t.Fatalf("expected actions error, got %v", err)
	}
}

func TestClearResetsEverything(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	_, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{
		addAction("burger", 2),
		{Action: "setObservations", Observations: "capricha"},
		{Action: "setPaymentMethod", PaymentMethod: "debit"},
		{Action: "setOrderType", OrderType: "pickup"},
	}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Clear(cart.ID)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got.TotalItems() != 0 || !got.Subtotal().IsZero() {
		t.Fatalf("cleared cart has items: %+v", got)
	}
	if got.Observations != "" || got.PaymentMethod != domain.DefaultPaymentMethod || got.OrderType != domain.DefaultOrderType {
		t.Fatalf("cleared cart keeps order-level fields: %+v", got)
	}
}

func TestTotalsTrackMutationSequence(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	steps := []UpdateAction{
		addAction("burger", 2),
		addAction("suco", 1),
		{Action: "changeLineItemQuantity", ProductID: "burger", Quantity: 1},
		{Action: "removeLineItem", ProductID: "suco"},
	}
	wantItems := []int{2, 3, 2, 1}
	wantSubtotal := []string{"49.80", "62.30", "37.40", "24.90"}

	for i, step := range steps {
		got, err := svc.Update(cart.ID, UpdateInput{Actions: []UpdateAction{step}})
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.TotalItems() != wantItems[i] {
			t.Fatalf("step %d: expected %d items, got %d", i, wantItems[i], got.TotalItems())
		}
		if !got.Subtotal().Equal(dec(wantSubtotal[i])) {
			t.Fatalf("step %d: expected subtotal %s, got %s", i, wantSubtotal[i], got.Subtotal())
		}
	}
}

func TestGetUnknownCart(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Get("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCart(t *testing.T) {
	svc, _ := newTestService()
	cart := svc.Create()

	if err := svc.Delete(cart.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(cart.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
