package cart

import (
	"errors"
	"fmt"
	"strings"

	"burgerdelicia/internal/domain"
)

// Service funnels every cart mutation through an explicit action list. It
// resolves products against the catalog so the unit price and name are frozen
// into the line at add time. Stock and quantity caps are not checked here;
// that stays with the catalog's order validation at checkout.
type Service struct {
	store    *Store
	products productResolver
}

type productResolver interface {
	ByID(id string) (domain.Product, error)
}

func New(store *Store, products productResolver) *Service {
	return &Service{store: store, products: products}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

type UpdateAction struct {
	Action        string `json:"action"`
	ProductID     string `json:"productId,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	Observations  string `json:"observations,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	OrderType     string `json:"orderType,omitempty"`
}

func (s *Service) Create() domain.Cart {
	return s.store.Create()
}

func (s *Service) Get(id string) (domain.Cart, error) {
	return s.store.Get(id)
}

// Update applies the actions in order against a working copy and commits all
// of them or none.
func (s *Service) Update(id string, in UpdateInput) (domain.Cart, error) {
	if len(in.Actions) == 0 {
		return domain.Cart{}, errors.New("actions required")
	}

	return s.store.Mutate(id, func(cart *domain.Cart) error {
		for _, action := range in.Actions {
			if err := s.apply(cart, action); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) apply(cart *domain.Cart, action UpdateAction) error {
	switch strings.ToLower(strings.TrimSpace(action.Action)) {
	case "addlineitem":
		return s.addLineItem(cart, action)
	case "changelineitemquantity":
		return changeLineItemQuantity(cart, action)
	case "removelineitem":
		return removeLineItem(cart, action)
	case "setobservations":
		cart.Observations = action.Observations
		return nil
	case "setpaymentmethod":
		method := domain.PaymentMethod(action.PaymentMethod)
		if !method.Valid() {
			return fmt.Errorf("unknown payment method %q", action.PaymentMethod)
		}
		cart.PaymentMethod = method
		return nil
	case "setordertype":
		orderType := domain.OrderType(action.OrderType)
		if !orderType.Valid() {
			return fmt.Errorf("unknown order type %q", action.OrderType)
		}
		cart.OrderType = orderType
		return nil
	default:
		return errors.New("unsupported action")
	}
}

// addLineItem merges into an existing line for the same product, otherwise
// appends a new line with the name and unit price captured now. A zero
// quantity means one.
func (s *Service) addLineItem(cart *domain.Cart, action UpdateAction) error {
	productID := strings.TrimSpace(action.ProductID)
	if productID == "" {
		return errors.New("productId required")
	}
	quantity := action.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return errors.New("quantity must be positive")
	}

	product, err := s.products.ByID(productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("product not found")
		}
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			return nil
		}
	}

	cart.Items = append(cart.Items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
	return nil
}

// changeLineItemQuantity replaces the quantity in place, preserving the line
// position. A quantity of zero or less removes the line.
func changeLineItemQuantity(cart *domain.Cart, action UpdateAction) error {
	productID := strings.TrimSpace(action.ProductID)
	if productID == "" {
		return errors.New("productId required")
	}
	if action.Quantity <= 0 {
		return removeLine(cart, productID)
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = action.Quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func removeLineItem(cart *domain.Cart, action UpdateAction) error {
	productID := strings.TrimSpace(action.ProductID)
	if productID == "" {
		return errors.New("productId required")
	}
	return removeLine(cart, productID)
}

func removeLine(cart *domain.Cart, productID string) error {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Clear empties the lines and resets observations, payment method and order
// type to their defaults.
func (s *Service) Clear(id string) (domain.Cart, error) {
	return s.store.Mutate(id, func(cart *domain.Cart) error {
		cart.Items = cart.Items[:0]
		cart.Observations = ""
		cart.PaymentMethod = domain.DefaultPaymentMethod
		cart.OrderType = domain.DefaultOrderType
		return nil
	})
}

// Delete discards the cart entirely.
func (s *Service) Delete(id string) error {
	return s.store.Delete(id)
}
