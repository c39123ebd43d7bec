package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"burgerdelicia/internal/cart"
	"burgerdelicia/internal/catalog"
	"burgerdelicia/internal/checkout"
	"burgerdelicia/internal/config"
	"burgerdelicia/internal/db"
	"burgerdelicia/internal/domain"
	"burgerdelicia/internal/httpserver"
	"burgerdelicia/internal/order"
	menurepo "burgerdelicia/internal/repository/menu"
	"burgerdelicia/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	products, err := loadMenu(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("load menu: %v", err)
	}

	store, err := catalog.NewStore(products, nil)
	if err != nil {
		logger.Fatalf("build catalog: %v", err)
	}
	logger.Printf("catalog loaded with %d products", store.Len())

	cartStore := cart.NewStore()
	cartService := cart.New(cartStore, store)
	checkoutManager := checkout.NewManager(cartService, store, cfg.DeliveryFee)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:        store,
		CartSvc:        cartService,
		Checkout:       checkoutManager,
		FeePolicy:      order.FeePolicy{DeliveryFee: cfg.DeliveryFee},
		WhatsAppNumber: cfg.WhatsAppNumber,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// loadMenu reads the catalog from Postgres when DB_DSN is configured,
// otherwise serves the built-in menu.
func loadMenu(ctx context.Context, cfg config.Config, logger *log.Logger) ([]domain.Product, error) {
	if cfg.DBConnString == "" {
		logger.Printf("no DB_DSN configured, using built-in menu")
		return seed.Menu(), nil
	}

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return menurepo.NewPostgres(pool, logger).List(ctx)
}
