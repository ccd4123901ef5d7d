package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"storefront-bff/internal/api"
	"storefront-bff/internal/auth"
	"storefront-bff/internal/backend"
	"storefront-bff/internal/cache"
	"storefront-bff/internal/catalog"
	"storefront-bff/internal/config"
	"storefront-bff/internal/payment"
	"storefront-bff/internal/session"
	"storefront-bff/internal/store"
	"storefront-bff/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.NewConfig()
	slog.Info("Starting storefront BFF", "port", cfg.HTTPPort, "backend", cfg.BackendURL)

	redisClient, err := cache.NewClient(cfg.RedisAddr)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.Info("Connected to Redis", "addr", cfg.RedisAddr)

	backendClient := backend.NewClient(cfg.BackendURL, cfg.RequestTimeout)
	catalogProvider := catalog.NewProvider(backendClient)
	gateway := payment.NewHostedClient(cfg.BackendURL)

	sessions := session.NewRegistry(backendClient, gateway, cfg.PaymentKeyID, cfg.SessionTTL,
		func(sessionID string) store.TokenKeeper {
			return redisClient.Tokens(sessionID, cfg.SessionTTL)
		})

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Sweep(sweepCtx, time.Minute)

	handler := api.NewHandler(backendClient, catalogProvider, redisClient, sessions)
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	public := func(route string, fn http.HandlerFunc) http.HandlerFunc {
		return telemetry.Middleware(route, fn)
	}
	protected := func(route string, fn http.HandlerFunc) http.HandlerFunc {
		return telemetry.Middleware(route, authMiddleware.ValidateToken(fn))
	}
	adminOnly := func(route string, fn http.HandlerFunc) http.HandlerFunc {
		return telemetry.Middleware(route, authMiddleware.RequireAdmin(fn))
	}

	mux.HandleFunc("GET /health", public("/health", handler.Health))
	mux.HandleFunc("GET /api/home", public("/api/home", handler.Home))
	mux.HandleFunc("GET /api/products", public("/api/products", handler.ListProducts))
	mux.HandleFunc("GET /api/products/{productId}", public("/api/products/{productId}", handler.GetProduct))
	mux.HandleFunc("GET /api/categories", public("/api/categories", handler.ListCategories))

	mux.HandleFunc("POST /api/auth/register", public("/api/auth/register", handler.Register))
	mux.HandleFunc("POST /api/auth/login", public("/api/auth/login", handler.Login))
	mux.HandleFunc("POST /api/auth/verify-otp", public("/api/auth/verify-otp", handler.VerifyOTP))
	mux.HandleFunc("POST /api/auth/resend-otp", public("/api/auth/resend-otp", handler.ResendOTP))
	mux.HandleFunc("GET /api/auth/callback", public("/api/auth/callback", handler.AuthCallback))

	mux.HandleFunc("GET /api/profile", protected("/api/profile", handler.Profile))
	mux.HandleFunc("POST /api/logout", protected("/api/logout", handler.Logout))

	mux.HandleFunc("GET /api/cart", protected("/api/cart", handler.GetCart))
	mux.HandleFunc("POST /api/cart", protected("/api/cart", handler.AddToCart))
	mux.HandleFunc("PUT /api/cart/{itemId}", protected("/api/cart/{itemId}", handler.UpdateCartItem))
	mux.HandleFunc("DELETE /api/cart/{itemId}", protected("/api/cart/{itemId}", handler.RemoveCartItem))
	mux.HandleFunc("DELETE /api/cart", protected("/api/cart", handler.ClearCart))

	mux.HandleFunc("GET /api/wishlist", protected("/api/wishlist", handler.GetWishlist))
	mux.HandleFunc("POST /api/wishlist/{productId}", protected("/api/wishlist/{productId}", handler.AddToWishlist))
	mux.HandleFunc("DELETE /api/wishlist/{productId}", protected("/api/wishlist/{productId}", handler.RemoveFromWishlist))

	mux.HandleFunc("POST /api/checkout", protected("/api/checkout", handler.BeginCheckout))
	mux.HandleFunc("GET /api/checkout", protected("/api/checkout", handler.CheckoutState))
	mux.HandleFunc("POST /api/checkout/addresses", protected("/api/checkout/addresses", handler.SaveAddress))
	mux.HandleFunc("PUT /api/checkout/addresses/{addressId}", protected("/api/checkout/addresses/{addressId}", handler.SelectAddress))
	mux.HandleFunc("DELETE /api/checkout/addresses/{addressId}", protected("/api/checkout/addresses/{addressId}", handler.DeleteAddress))
	mux.HandleFunc("POST /api/checkout/payment", protected("/api/checkout/payment", handler.ContinueToPayment))
	mux.HandleFunc("POST /api/checkout/place", protected("/api/checkout/place", handler.PlaceOrder))

	mux.HandleFunc("GET /api/orders", protected("/api/orders", handler.ListOrders))
	mux.HandleFunc("GET /api/orders/{orderId}", protected("/api/orders/{orderId}", handler.GetOrder))
	mux.HandleFunc("POST /api/orders/{orderId}/cancel", protected("/api/orders/{orderId}/cancel", handler.CancelOrder))

	mux.HandleFunc("GET /api/admin/stats", adminOnly("/api/admin/stats", handler.AdminStats))
	mux.HandleFunc("GET /api/admin/products", adminOnly("/api/admin/products", handler.AdminListProducts))
	mux.HandleFunc("POST /api/admin/products", adminOnly("/api/admin/products", handler.AdminCreateProduct))
	mux.HandleFunc("PUT /api/admin/products/{productId}", adminOnly("/api/admin/products/{productId}", handler.AdminUpdateProduct))
	mux.HandleFunc("DELETE /api/admin/products/{productId}", adminOnly("/api/admin/products/{productId}", handler.AdminDeleteProduct))
	mux.HandleFunc("GET /api/admin/categories", adminOnly("/api/admin/categories", handler.AdminListCategories))
	mux.HandleFunc("POST /api/admin/categories", adminOnly("/api/admin/categories", handler.AdminCreateCategory))
	mux.HandleFunc("PUT /api/admin/categories/{categoryId}", adminOnly("/api/admin/categories/{categoryId}", handler.AdminUpdateCategory))
	mux.HandleFunc("DELETE /api/admin/categories/{categoryId}", adminOnly("/api/admin/categories/{categoryId}", handler.AdminDeleteCategory))
	mux.HandleFunc("GET /api/admin/orders", adminOnly("/api/admin/orders", handler.AdminListOrders))
	mux.HandleFunc("PUT /api/admin/orders/{orderId}", adminOnly("/api/admin/orders/{orderId}", handler.AdminUpdateOrderStatus))
	mux.HandleFunc("GET /api/admin/users", adminOnly("/api/admin/users", handler.AdminListUsers))
	mux.HandleFunc("DELETE /api/admin/users/{userId}", adminOnly("/api/admin/users/{userId}", handler.AdminDeleteUser))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	slog.Info("Server listening", "addr", serverAddr)

	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}
}
