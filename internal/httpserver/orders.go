package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"burgerdelicia/internal/domain"
	"burgerdelicia/internal/order"
)

// orderPreview handles GET /api/carts/:id/order: the serialized order
// message and the wa.me deep link that carries it.
func (s *Server) orderPreview(c *gin.Context) {
	snapshot, err := s.deps.CartSvc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	payload, err := order.Build(snapshot, s.deps.FeePolicy)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payload": payload,
		"message": payload.Message(),
		"link":    payload.Link(s.deps.WhatsAppNumber),
	})
}
