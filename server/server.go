// Package server exposes the REST API: website management, scan history,
// recommendations and manual scan triggers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webpulse/webpulse/pkg/domain"
	"github.com/webpulse/webpulse/pkg/scanner"
)

//go:generate moq -out mocks/website_store.go -pkg mocks -skip-ensure -fmt goimports . WebsiteStore
//go:generate moq -out mocks/scan_store.go -pkg mocks -skip-ensure -fmt goimports . ScanStore
//go:generate moq -out mocks/recommendation_store.go -pkg mocks -skip-ensure -fmt goimports . RecommendationStore
//go:generate moq -out mocks/trigger.go -pkg mocks -skip-ensure -fmt goimports . Trigger

// Server represents HTTP server instance
type Server struct {
	websites WebsiteStore
	scans    ScanStore
	recs     RecommendationStore
	trigger  Trigger
	listen   string
	timeout  time.Duration
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// WebsiteStore interface for website operations
type WebsiteStore interface {
	Create(ctx context.Context, w *domain.Website) error
	Get(ctx context.Context, id string) (*domain.Website, error)
	List(ctx context.Context) ([]*domain.Website, error)
	UpdateFrequency(ctx context.Context, id string, freq domain.ScanFrequency) error
}

// ScanStore interface for scan history operations
type ScanStore interface {
	Get(ctx context.Context, id string) (*domain.Scan, error)
	ListByWebsite(ctx context.Context, websiteID string, limit int) ([]*domain.Scan, error)
}

// RecommendationStore interface for recommendation lookups
type RecommendationStore interface {
	ListByScan(ctx context.Context, scanID string) ([]*domain.Recommendation, error)
}

// Trigger queues on-demand scans
type Trigger interface {
	Enqueue(ctx context.Context, websiteID string) (*domain.Scan, error)
}

// Config holds server parameters
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// New initializes a new server instance
func New(cfg Config, websites WebsiteStore, scans ScanStore, recs RecommendationStore, trigger Trigger) *Server {
	s := &Server{
		websites: websites,
		scans:    scans,
		recs:     recs,
		trigger:  trigger,
		listen:   cfg.Listen,
		timeout:  cfg.Timeout,
		version:  cfg.Version,
		debug:    cfg.Debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("webpulse", "webpulse", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /websites", s.createWebsiteHandler)
		r.HandleFunc("GET /websites", s.listWebsitesHandler)
		r.HandleFunc("GET /websites/{id}", s.getWebsiteHandler)
		r.HandleFunc("PUT /websites/{id}/frequency", s.updateFrequencyHandler)
		r.HandleFunc("POST /websites/{id}/scan", s.triggerScanHandler)
		r.HandleFunc("GET /websites/{id}/scans", s.listScansHandler)

		r.HandleFunc("GET /scans/{id}", s.getScanHandler)
		r.HandleFunc("GET /scans/{id}/recommendations", s.listRecommendationsHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}

// storeErrorCode maps store and trigger errors to HTTP statuses
func storeErrorCode(err error) int {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, scanner.ErrScanActive) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
