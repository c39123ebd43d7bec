package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"burgerdelicia/internal/cart"
	"burgerdelicia/internal/catalog"
	"burgerdelicia/internal/checkout"
	"burgerdelicia/internal/order"
)

// Deps bundles the core components the handlers operate on.
type Deps struct {
	Catalog        *catalog.Store
	CartSvc        *cart.Service
	Checkout       *checkout.Manager
	FeePolicy      order.FeePolicy
	WhatsAppNumber string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	deps       Deps
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, deps Deps, allowedOrigins []string) (*Server, error) {
	s := &Server{logger: logger, deps: deps}

	router := s.buildRouter(allowedOrigins)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) readyHandler(c *gin.Context) {
	if s.deps.Catalog == nil || s.deps.Catalog.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "catalog not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
