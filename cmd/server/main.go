package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/urbx/storefront/internal/admin"
	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/config"
	"github.com/urbx/storefront/internal/events"
	"github.com/urbx/storefront/internal/handlers"
	"github.com/urbx/storefront/internal/logging"
	"github.com/urbx/storefront/internal/order"
	"github.com/urbx/storefront/internal/payment"
	"github.com/urbx/storefront/internal/session"
	"github.com/urbx/storefront/internal/storage"
	httpserver "github.com/urbx/storefront/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL).With("service", "storefront")
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	prod, err := events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	if err != nil {
		log.Printf("kafka disabled: %v", err)
		prod = nil
	}

	cat := catalog.New()
	kv := &storage.GormKV{DB: db}
	store := &order.GormStore{DB: db}
	sessions := session.NewManager(kv)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		Sessions:        sessions,
		ProductHandler:  &handlers.ProductHandler{Catalog: cat},
		CartHandler:     &handlers.CartHandler{Catalog: cat, Producer: prod},
		WishlistHandler: &handlers.WishlistHandler{Catalog: cat, Producer: prod},
		CheckoutHandler: &handlers.CheckoutHandler{
			Submitter: &order.Submitter{Store: store, Payments: payment.NewSimulator()},
			Producer:  prod,
		},
		AdminHandler: &handlers.AdminHandler{
			Viewer:    &admin.Viewer{Store: store},
			JWTSecret: []byte(configuration.JWT_SECRET),
		},
	}

	httpserver.Register(e, &deps)

	addr := ":" + configuration.SERVER_PORT
	if addr == ":" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
