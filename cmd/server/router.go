package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/hunterprice/internal/api"
	apiMiddleware "github.com/phrazzld/hunterprice/internal/api/middleware"
	"github.com/phrazzld/hunterprice/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Middleware order on the API routes: trace, Accept/Content-Type guard,
// token guard (when enabled), JSON body translator.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	// Health check endpoint, outside the JSON chain
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.RequireJSON)
		if app.tokenService != nil {
			r.Use(apiMiddleware.NewAuthMiddleware(app.tokenService).Authenticate)
		}
		r.Use(apiMiddleware.JSONTranslator)

		api.RegisterRoutes(r,
			api.NewUserHandler(app.userService),
			api.NewListHandler(app.listService),
			api.NewProductHandler(app.productService))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, shared.CodeNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.CodeMethodNotAllowed,
			"Method not allowed")
	})

	return r
}
