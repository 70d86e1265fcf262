package api

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wirebyte/tlvkit/pkg/storage"
)

// StartServer opens the capture store and serves the decode API until the
// listener fails.
func StartServer(config ServerConfig) error {
	captures, err := storage.Open(filepath.Join(config.DataDir, "captures"))
	if err != nil {
		return err
	}
	defer captures.Close()

	metrics := NewMetrics()
	server := NewServer(captures, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("tlvkit decode service listening on %s (variant=%s, schema=%s)",
		addr, server.config.Variant, server.schema.Name)

	return http.ListenAndServe(addr, Router(server))
}

// Router assembles the chi router for a decode service.
func Router(server *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// unprotected for scraping
	r.Handle("/metrics", promhttp.Handler())

	m := server.metrics
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(server.config.APIKey))

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Post("/decode", m.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/build", m.InstrumentHandler("POST", "/api/v1/build", server.handleBuild))

		r.Post("/captures", m.InstrumentHandler("POST", "/api/v1/captures", server.handleCreateCapture))
		r.Get("/captures/{id}", m.InstrumentHandler("GET", "/api/v1/captures/{id}", server.handleGetCapture))
		r.Get("/captures/{id}/records", m.InstrumentHandler("GET", "/api/v1/captures/{id}/records", server.handleDecodeCapture))
		r.Delete("/captures/{id}", m.InstrumentHandler("DELETE", "/api/v1/captures/{id}", server.handleDeleteCapture))
	})

	return r
}
