package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/cart"
	"burgerdelicia/internal/domain"
)

// cartResponse is the cart plus its derived totals.
type cartResponse struct {
	domain.Cart
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

func toCartResponse(c domain.Cart) cartResponse {
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return cartResponse{
		Cart:       c,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal().Round(2),
	}
}

func (s *Server) createCart(c *gin.Context) {
	c.JSON(http.StatusCreated, toCartResponse(s.deps.CartSvc.Create()))
}

func (s *Server) getCart(c *gin.Context) {
	snapshot, err := s.deps.CartSvc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snapshot))
}

// updateCart handles POST /api/carts/:id with a list of actions, applied
// atomically.
func (s *Server) updateCart(c *gin.Context) {
	var in cart.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	snapshot, err := s.deps.CartSvc.Update(c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snapshot))
}

func (s *Server) clearCart(c *gin.Context) {
	snapshot, err := s.deps.CartSvc.Clear(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(snapshot))
}

// validateCart checks the cart lines against stock and quantity caps without
// mutating anything.
func (s *Server) validateCart(c *gin.Context) {
	snapshot, err := s.deps.CartSvc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, s.deps.Catalog.ValidateCart(snapshot))
}
