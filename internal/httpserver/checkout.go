package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"burgerdelicia/internal/checkout"
	"burgerdelicia/internal/domain"
)

// startCheckout handles POST /api/carts/:id/checkout.
func (s *Server) startCheckout(c *gin.Context) {
	session, err := s.deps.Checkout.Start(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		case errors.Is(err, domain.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) getCheckout(c *gin.Context) {
	session, err := s.deps.Checkout.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// submitContact handles POST /api/checkout/:id/contact. Invalid fields come
// back as a field→reason map with 422.
func (s *Server) submitContact(c *gin.Context) {
	var info checkout.ContactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	session, fieldErrors, err := s.deps.Checkout.SubmitContact(c.Param("id"), info)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": fieldErrors})
		return
	}
	c.JSON(http.StatusOK, session)
}

// submitPayment handles POST /api/checkout/:id/payment. Card data is only
// required when the cart's payment method needs it.
func (s *Server) submitPayment(c *gin.Context) {
	var card checkout.CardInfo
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := s.deps.Checkout.SubmitPayment(c.Param("id"), card)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	switch {
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"fieldErrors": result.FieldErrors})
	case len(result.StockFailures) > 0:
		c.JSON(http.StatusConflict, gin.H{"stockFailures": result.StockFailures})
	default:
		c.JSON(http.StatusOK, gin.H{"confirmation": result.Confirmation})
	}
}

func (s *Server) checkoutBack(c *gin.Context) {
	session, err := s.deps.Checkout.Back(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) abandonCheckout(c *gin.Context) {
	if err := s.deps.Checkout.Abandon(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
