package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"araltech.tech/portfolio/internal/config"
	"araltech.tech/portfolio/internal/middleware"
	"araltech.tech/portfolio/internal/services"
	"araltech.tech/portfolio/internal/views"
)

// Backend is the portfolio data source the handlers render from.
// portfolioapi.Client satisfies it.
type Backend interface {
	services.Source
	ImageURL(path string) string
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg config.Config, backend Backend, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Initialize handlers
	pageHandler := NewPageHandler(backend, logger)
	projectHandler := NewProjectHandler(backend, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/categories", projectHandler.ListCategories)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Pages
	r.Get("/", pageHandler.Index)
	r.Get(views.FragmentPath, pageHandler.ListingFragment)
	r.Get("/projects/{id}", pageHandler.Project)
	r.Post("/theme", pageHandler.ToggleTheme)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
