package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/saawariya-rasoi/api/internal/config"
	"github.com/saawariya-rasoi/api/internal/handler"
	mw "github.com/saawariya-rasoi/api/internal/middleware"
	"github.com/saawariya-rasoi/api/internal/notify"
	"github.com/saawariya-rasoi/api/internal/service"
	"github.com/saawariya-rasoi/api/internal/store"
	"github.com/saawariya-rasoi/api/internal/ws"
)

// New creates a Chi router with all application routes wired up.
// Applies authentication and role-based middleware as needed.
func New(cfg *config.Config, queries *store.Queries, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",         // Vite dev server
			"https://saawariyarasoi.com",    // Production storefront
			"https://www.saawariyarasoi.com",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// Menu routes (public; mode comes from a query param so the
	// storefront works without an account)
	menuHandler := handler.NewMenuHandler(cfg.DeliveryURL, cfg.TakeawayPhone)
	menuHandler.RegisterRoutes(r)

	// Notification function (public; mirrors the storefront's
	// fire-and-forget call on submission)
	dispatcher := notify.NewDispatcher(cfg.NotifyWebhookURL, cfg.AdminEmail, cfg.AdminPhone)
	notificationHandler := handler.NewNotificationHandler(dispatcher)
	r.Route("/functions", notificationHandler.RegisterRoutes)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		// Orders
		orderService := service.NewOrderService(queries, dispatcher)
		orderHandler := handler.NewOrderHandler(orderService, queries, hub)
		r.Route("/orders", orderHandler.RegisterRoutes)

		// Profile and order-mode preference
		profileHandler := handler.NewProfileHandler(queries)
		r.Route("/me", profileHandler.RegisterRoutes)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole("admin"))
			adminHandler := handler.NewAdminHandler(queries, hub)
			r.Route("/admin", adminHandler.RegisterRoutes)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
