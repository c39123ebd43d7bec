package catalog

import (
	"fmt"

	"burgerdelicia/internal/domain"
)

// OrderLine is one prospective (product, quantity) pair to validate.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// FailureCode classifies why an order line was rejected.
type FailureCode string

const (
	FailureNotFound          FailureCode = "not-found"
	FailureUnavailable       FailureCode = "unavailable"
	FailureInsufficientStock FailureCode = "insufficient-stock"
	FailureMaxQuantity       FailureCode = "max-quantity"
)

// Failure ties a rejection to the offending order line.
type Failure struct {
	ProductID string      `json:"productId"`
	Code      FailureCode `json:"code"`
	Message   string      `json:"message"`
}

// ValidationResult is the aggregate outcome: Valid is true iff no line failed.
type ValidationResult struct {
	Valid    bool      `json:"valid"`
	Failures []Failure `json:"failures,omitempty"`
}

// ValidateOrder checks every line against the catalog: the product must
// exist, be available, have enough stock, and the quantity must respect the
// per-item cap. All failures are collected in line order, never fail-fast, so
// the caller can present one complete correction list. A quantity below one
// counts as one, matching the storefront's add behavior.
func (s *Store) ValidateOrder(lines []OrderLine) ValidationResult {
	var failures []Failure

	for _, line := range lines {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		product, err := s.ByID(line.ProductID)
		if err != nil {
			failures = append(failures, Failure{
				ProductID: line.ProductID,
				Code:      FailureNotFound,
				Message:   fmt.Sprintf("Produto %s não encontrado", line.ProductID),
			})
			continue
		}

		if !product.Available {
			failures = append(failures, Failure{
				ProductID: product.ID,
				Code:      FailureUnavailable,
				Message:   fmt.Sprintf("%s: Produto indisponível", product.Name),
			})
		}
		if product.Stock < quantity {
			failures = append(failures, Failure{
				ProductID: product.ID,
				Code:      FailureInsufficientStock,
				Message:   fmt.Sprintf("%s: Estoque insuficiente", product.Name),
			})
		}
		if quantity > product.MaxQuantity {
			failures = append(failures, Failure{
				ProductID: product.ID,
				Code:      FailureMaxQuantity,
				Message:   fmt.Sprintf("%s: Quantidade máxima excedida", product.Name),
			})
		}
	}

	return ValidationResult{Valid: len(failures) == 0, Failures: failures}
}

// ValidateCart adapts a cart's lines for ValidateOrder.
func (s *Store) ValidateCart(cart domain.Cart) ValidationResult {
	lines := make([]OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return s.ValidateOrder(lines)
}
