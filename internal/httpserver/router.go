package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the storefront routes.
func (s *Server) buildRouter(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", s.readyHandler)

	api := router.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/products/:id/recommendations", s.recommendProducts)
		api.GET("/categories", s.listCategories)
		api.GET("/info", s.restaurantInfo)
		api.GET("/best-sellers", s.bestSellers)
		api.GET("/stats", s.catalogStats)

		api.POST("/carts", s.createCart)
		api.GET("/carts/:id", s.getCart)
		api.POST("/carts/:id", s.updateCart)
		api.DELETE("/carts/:id", s.clearCart)
		api.POST("/carts/:id/validate", s.validateCart)
		api.GET("/carts/:id/order", s.orderPreview)
		api.POST("/carts/:id/checkout", s.startCheckout)

		api.GET("/checkout/:id", s.getCheckout)
		api.POST("/checkout/:id/contact", s.submitContact)
		api.POST("/checkout/:id/payment", s.submitPayment)
		api.POST("/checkout/:id/back", s.checkoutBack)
		api.DELETE("/checkout/:id", s.abandonCheckout)
	}

	return router
}
