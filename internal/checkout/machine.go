// Package checkout implements the gated step sequence that finalizes an
// order: contact/address, then payment, then submission. Transitions are
// explicit and testable without any rendering.
package checkout

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/catalog"
	"burgerdelicia/internal/domain"
)

// Step is the current position in the checkout flow.
type Step string

const (
	StepContactAddress Step = "contact-address"
	StepPayment        Step = "payment"
	StepSubmitted      Step = "submitted"
)

// Session is the transient state of one checkout attempt. It is created when
// checkout starts and discarded on submission or abandonment; the cart itself
// outlives it.
type Session struct {
	ID        string      `json:"id"`
	CartID    string      `json:"cartId"`
	Step      Step        `json:"step"`
	Contact   ContactInfo `json:"contact"`
	Card      CardInfo    `json:"-"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Confirmation is produced once a checkout reaches the submitted state.
type Confirmation struct {
	OrderNumber string          `json:"orderNumber"`
	Total       decimal.Decimal `json:"total"`
}

// SubmitResult is the outcome of the payment step. Exactly one of the three
// groups is populated: field errors, stock failures, or the confirmation.
type SubmitResult struct {
	FieldErrors   FieldErrors       `json:"fieldErrors,omitempty"`
	StockFailures []catalog.Failure `json:"stockFailures,omitempty"`
	Confirmation  *Confirmation     `json:"confirmation,omitempty"`
}

// Ok reports whether the submission went through.
func (r SubmitResult) Ok() bool {
	return r.Confirmation != nil
}

type cartService interface {
	Get(id string) (domain.Cart, error)
	Clear(id string) (domain.Cart, error)
}

type orderValidator interface {
	ValidateCart(cart domain.Cart) catalog.ValidationResult
}

// Manager owns the in-flight checkout sessions and drives the step machine.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session

	carts       cartService
	validator   orderValidator
	deliveryFee decimal.Decimal
}

func NewManager(carts cartService, validator orderValidator, deliveryFee decimal.Decimal) *Manager {
	return &Manager{
		sessions:    make(map[string]Session),
		carts:       carts,
		validator:   validator,
		deliveryFee: deliveryFee,
	}
}

// Start opens a checkout session for a cart. Empty carts cannot enter
// checkout.
func (m *Manager) Start(cartID string) (Session, error) {
	cart, err := m.carts.Get(cartID)
	if err != nil {
		return Session{}, err
	}
	if cart.Empty() {
		return Session{}, domain.ErrEmptyCart
	}

	session := Session{
		ID:        uuid.NewString(),
		CartID:    cartID,
		Step:      StepContactAddress,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session, nil
}

// Get returns the session state.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	return session, nil
}

// SubmitContact records the contact/address fields and advances to the
// payment step when every field validates. On failure the session keeps the
// submitted values so the customer only corrects the flagged fields.
func (m *Manager) SubmitContact(id string, info ContactInfo) (Session, FieldErrors, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, nil, domain.ErrNotFound
	}

	session.Contact = info
	if errs := ValidateContact(info); len(errs) > 0 {
		m.sessions[id] = session
		return session, errs, nil
	}

	session.Step = StepPayment
	m.sessions[id] = session
	return session, nil, nil
}

// Back returns from the payment step to contact/address without discarding
// any already-entered data. It is always allowed.
func (m *Manager) Back(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	if session.Step == StepPayment {
		session.Step = StepContactAddress
		m.sessions[id] = session
	}
	return session, nil
}

// SubmitPayment gates the final transition. Card fields are only required for
// payment methods that need card data. The cart is then checked against stock
// and quantity caps; any failure blocks submission without touching the cart.
// On success the cart is cleared, a confirmation is produced and the session
// is discarded.
func (m *Manager) SubmitPayment(id string, card CardInfo) (SubmitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return SubmitResult{}, domain.ErrNotFound
	}
	if session.Step != StepPayment {
		return SubmitResult{}, errStepOrder(session.Step)
	}

	cart, err := m.carts.Get(session.CartID)
	if err != nil {
		return SubmitResult{}, err
	}

	session.Card = card
	if cart.PaymentMethod.RequiresCard() {
		if errs := ValidateCard(card); len(errs) > 0 {
			m.sessions[id] = session
			return SubmitResult{FieldErrors: errs}, nil
		}
	}

	if result := m.validator.ValidateCart(cart); !result.Valid {
		m.sessions[id] = session
		return SubmitResult{StockFailures: result.Failures}, nil
	}

	fee := decimal.Zero
	if cart.OrderType == domain.OrderDelivery {
		fee = m.deliveryFee
	}
	total := cart.Subtotal().Add(fee).Round(2)

	if _, err := m.carts.Clear(session.CartID); err != nil {
		return SubmitResult{}, err
	}

	delete(m.sessions, id)
	return SubmitResult{Confirmation: &Confirmation{
		OrderNumber: orderNumber(),
		Total:       total,
	}}, nil
}

// Abandon discards the session; the cart is left untouched.
func (m *Manager) Abandon(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// orderNumber derives a short human-friendly confirmation code.
func orderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:9]
}

type stepError struct {
	step Step
}

func errStepOrder(step Step) error {
	return stepError{step: step}
}

func (e stepError) Error() string {
	return "checkout step " + string(e.step) + " must be completed first"
}
