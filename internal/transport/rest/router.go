package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/yarnuri/stampclock/internal/auth"
	"github.com/yarnuri/stampclock/internal/directory"
	"github.com/yarnuri/stampclock/internal/stamp"
	"github.com/yarnuri/stampclock/internal/transport/middleware"
	"github.com/yarnuri/stampclock/internal/transport/swagger"
)

// RegisterAllRoutes wires every endpoint. The stamp and user paths are kept
// exactly as the frontend expects them: /stamp, /stamp/status, /users.
// Stamping stays open (shared kiosk terminals log in client-side), while the
// roster sits behind the admin token middleware.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *directory.Handler,
	stampHandler *stamp.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/auth/login", authHandler.Login)

	router.Route("/stamp", func(r chi.Router) {
		r.Post("/", stampHandler.Record)
		r.Post("/status", stampHandler.Status)
		r.Get("/history", stampHandler.History)
	})

	router.Group(func(pr chi.Router) {
		pr.Use(authHandler.RequireAdmin)

		pr.Get("/users", userHandler.ListUsers)
		pr.Post("/users", userHandler.CreateUser)
		pr.Put("/users", userHandler.UpdateUser)
		pr.Delete("/users", userHandler.DeleteUser)
	})
}
