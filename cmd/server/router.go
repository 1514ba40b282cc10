package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/frotaops/frota-api/internal/api"
	apiMiddleware "github.com/frotaops/frota-api/internal/api/middleware"
	"github.com/frotaops/frota-api/internal/api/shared"
	"github.com/frotaops/frota-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The route → required-role table:
//
//	GET  /                        public
//	POST /administradores/login   public
//	GET  /administradores         Admin
//	POST /administradores         Admin
//	GET  /administradores/{id}    any authenticated
//	POST /veiculos                Admin, Editor
//	GET  /veiculos                Admin
//	GET  /veiculos/{id}           Admin, Editor
//	PUT  /veiculos/{id}           Admin
//	DEL  /veiculos/{id}           Admin
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Bound the whole request, store round-trip included; a hung store
	// call surfaces as a 5xx instead of pinning the connection forever.
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.administratorStore,
		app.jwtService,
		app.passwordVerifier,
	)
	administratorHandler := api.NewAdministratorHandler(
		app.administratorStore,
		app.passwordHasher,
	)
	vehicleHandler := api.NewVehicleHandler(app.vehicleStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public home endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to the vehicle administration API",
		})
	})

	// Public authentication endpoint
	r.Post("/administradores/login", authHandler.Login)

	// Administrator endpoints
	r.Route("/administradores", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireRole(domain.RoleAdmin))
			r.Get("/", administratorHandler.List)
			r.Post("/", administratorHandler.Create)
		})

		// Any authenticated role may read a single administrator
		r.Get("/{id}", administratorHandler.Get)
	})

	// Vehicle endpoints
	r.Route("/veiculos", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireRole(domain.RoleAdmin, domain.RoleEditor))
			r.Post("/", vehicleHandler.Create)
			r.Get("/{id}", vehicleHandler.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireRole(domain.RoleAdmin))
			r.Get("/", vehicleHandler.List)
			r.Put("/{id}", vehicleHandler.Update)
			r.Delete("/{id}", vehicleHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
