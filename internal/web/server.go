package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
	"github.com/emiliopalmerini/cloudbill/internal/logger"
	"github.com/emiliopalmerini/cloudbill/internal/ports"
	"github.com/emiliopalmerini/cloudbill/internal/session"
	"github.com/emiliopalmerini/cloudbill/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

const sweepInterval = time.Minute

// Options tunes the server.
type Options struct {
	Port        int
	PreviewRows int
}

type Server struct {
	router      *http.ServeMux
	port        int
	previewRows int
	dataset     *domain.Dataset
	sessions    *session.Store
	metrics     ports.MetricsExporter
}

func NewServer(ds *domain.Dataset, store *session.Store, metrics ports.MetricsExporter, opts Options) *Server {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 200
	}
	s := &Server{
		router:      http.NewServeMux(),
		port:        opts.Port,
		previewRows: opts.PreviewRows,
		dataset:     ds,
		sessions:    store,
		metrics:     metrics,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Page
	s.router.HandleFunc("GET /{$}", s.handleDashboard)

	// Control events (htmx)
	s.router.HandleFunc("POST /api/events", s.handleEvent)

	// Chart images
	s.router.HandleFunc("GET /charts/scatter.png", s.handleScatterPNG)
	s.router.HandleFunc("GET /charts/distribution.png", s.handleDistributionPNG)

	// JSON API
	s.router.HandleFunc("GET /api/summary", s.handleAPISummary)
	s.router.HandleFunc("GET /api/distribution", s.handleAPIDistribution)

	// Export
	s.router.HandleFunc("GET /api/export", s.handleAPIExport)
}

// Handler returns the router wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	return middleware.HTMX(middleware.AccessLog(s.router))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.sessions.Run(ctx, sweepInterval)

	logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port), "rows", s.dataset.Len())

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
