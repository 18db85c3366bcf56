package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Vedantb04/Clothera/internal/cart"
	"github.com/Vedantb04/Clothera/internal/catalog"
	"github.com/Vedantb04/Clothera/internal/config"
	"github.com/Vedantb04/Clothera/internal/domain"
	h "github.com/Vedantb04/Clothera/internal/http"
	"github.com/Vedantb04/Clothera/internal/storage"
	"github.com/Vedantb04/Clothera/internal/wishlist"
)

const (
	cartSnapshotKey     = "clothera:cart"
	wishlistSnapshotKey = "clothera:wishlist"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "storefront").Logger()

	// Catalog: sqlite-backed, migrated and seeded at startup.
	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog database")
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run catalog migrations")
	}

	catalogSvc := catalog.NewService(repo)

	// Snapshot persistence. A dead redis degrades the session to
	// memory-only, it never takes the storefront down.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	cartSnapshots := storage.NewBreakerStore[domain.CartLine](
		storage.NewRedisStore[domain.CartLine](redisClient, cartSnapshotKey, log), "cart-snapshots")
	wishlistSnapshots := storage.NewBreakerStore[domain.Product](
		storage.NewRedisStore[domain.Product](redisClient, wishlistSnapshotKey, log), "wishlist-snapshots")

	cartStore := cart.NewStore(cartSnapshots, log)
	wishlistStore := wishlist.NewStore(wishlistSnapshots, log)

	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 5*time.Second)
	cartStore.Hydrate(hydrateCtx)
	wishlistStore.Hydrate(hydrateCtx)
	cancelHydrate()

	cartHandler := h.NewCartHandler(cartStore, catalogSvc)
	catalogHandler := h.NewCatalogHandler(catalogSvc)
	wishlistHandler := h.NewWishlistHandler(wishlistStore, catalogSvc)
	checkoutHandler := h.NewCheckoutHandler(cartStore, log)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/{id}", catalogHandler.GetProduct)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Post("/coupon", cartHandler.ApplyCoupon)
			r.Delete("/coupon", cartHandler.RemoveCoupon)
		})
		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.GetWishlist)
			r.Delete("/", wishlistHandler.Clear)
			r.Post("/items", wishlistHandler.Toggle)
			r.Delete("/items/{product_id}", wishlistHandler.Remove)
		})
		r.Post("/checkout", checkoutHandler.PlaceOrder)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
