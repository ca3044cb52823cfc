// Package api implements the HRMS REST interface over employees and attendance
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/rs/cors"

	"github.com/hrms-lite/hrms/app/store"
)

//go:generate mockery --name Store --output mocks --outpkg mocks --case snake --with-expecter=false

// Store defines persistence operations used by the handlers. Each call is a separate unit of work.
type Store interface {
	ListEmployees(ctx context.Context) ([]store.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (store.Employee, error)
	CreateEmployee(ctx context.Context, emp store.Employee) (store.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	ListAttendance(ctx context.Context, filter store.AttendanceFilter) ([]store.Attendance, error)
	MarkAttendance(ctx context.Context, rec store.Attendance) (store.Attendance, error)
	Snapshot(ctx context.Context) ([]store.Employee, []store.Attendance, error)
}

// Server is the HTTP server of the REST API
type Server struct {
	store       Store
	version     string
	rateLimit   float64 // write requests per second per client, 0 disables limiting
	maxBodySize int64
}

// Config holds server configuration
type Config struct {
	Store       Store
	Version     string
	RateLimit   float64 // max POST/DELETE requests per second per client ip, 0 to disable
	MaxBodySize int64   // max request size in bytes, defaults to 64KB
}

// New creates a new API server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("api server initialization failed: Store is required")
	}
	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = 64 * 1024
	}
	return &Server{
		store:       cfg.Store,
		version:     cfg.Version,
		rateLimit:   cfg.RateLimit,
		maxBodySize: maxBody,
	}, nil
}

// Run starts the http server and blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting api server on %s", address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// handler returns the routes wrapped with CORS, open to any origin, method and header
func (s *Server) handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(s.routes())
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("hrms", "hrms-lite", s.version),
		rest.Ping,
		rest.SizeLimit(s.maxBodySize),
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	router.NotFoundHandler(s.handleNotFound)

	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		write := api.With(s.writeLimiter())

		api.HandleFunc("GET /health", s.handleHealth)
		api.HandleFunc("GET /schema", s.handleSchema)

		api.HandleFunc("GET /employees", s.handleListEmployees)
		api.HandleFunc("GET /employees/{employee_id}", s.handleGetEmployee)
		write.HandleFunc("POST /employees", s.handleCreateEmployee)
		write.HandleFunc("DELETE /employees/{employee_id}", s.handleDeleteEmployee)

		api.HandleFunc("GET /attendance", s.handleListAttendance)
		write.HandleFunc("POST /attendance", s.handleMarkAttendance)

		api.HandleFunc("GET /dashboard/summary", s.handleDashboardSummary)
	})

	return router
}

// writeLimiter returns per-ip rate limiting middleware for mutating routes,
// pass-through if rate limit is not configured
func (s *Server) writeLimiter() func(http.Handler) http.Handler {
	if s.rateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	lmt := tollbooth.NewLimiter(s.rateLimit, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(`{"detail":"rate limit exceeded"}`)
	return tollbooth.HTTPMiddleware(lmt)
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, rest.JSON{"status": "healthy", "service": "HRMS Lite API"})
}

// handleNotFound answers unknown routes with the common error body
func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeJSONError(w, http.StatusNotFound, "Not Found")
}
