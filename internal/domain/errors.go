package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates an order payload was requested for a cart
	// without any lines.
	ErrEmptyCart = errors.New("cart is empty")
)
