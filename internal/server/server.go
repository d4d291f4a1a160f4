// Package server provides the HTTP REST API for the crew document screener.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gabriel/crewdocs/internal/db"
	"github.com/gabriel/crewdocs/internal/hierarchy"
	"github.com/gabriel/crewdocs/internal/llm"
	"github.com/gabriel/crewdocs/internal/reconcile"
	"github.com/gabriel/crewdocs/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	engine      *reconcile.Engine
	llmClient   *llm.Client
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	GeminiAPIKey  string
	HierarchyFile string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Regulatory code hierarchy: built-in table unless a custom one is given
	table := hierarchy.Default()
	if cfg.HierarchyFile != "" {
		table, err = hierarchy.LoadFile(cfg.HierarchyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load hierarchy table: %w", err)
		}
	}

	s := &Server{
		db:       database,
		validate: validator.New(),
	}

	// The AI comparer is optional; without a key the engine falls back to
	// its deterministic strategies only.
	var engineOpts []reconcile.Option
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		engineOpts = append(engineOpts, reconcile.WithNameComparer(llm.NewComparer(client)))
	}
	s.engine = reconcile.NewEngine(reconcile.DefaultConfig(), table, engineOpts...)

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Setup router
	mux := s.routes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Comparison runs may call the LLM per requirement
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the route table. Kept separate from New so the mux can be
// constructed without a database; ServeMux panics on conflicting patterns.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Candidate endpoints
	mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	mux.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)

	// Candidate document endpoints
	mux.HandleFunc("POST /candidates/{id}/documents", s.handleCreateDocuments)
	mux.HandleFunc("GET /candidates/{id}/documents", s.handleListDocuments)
	mux.HandleFunc("GET /documents/{id}", s.handleGetDocument)
	mux.HandleFunc("DELETE /documents/{id}", s.handleDeleteDocument)

	// Vacancy endpoints
	mux.HandleFunc("POST /vacancies", s.handleCreateVacancy)
	mux.HandleFunc("GET /vacancies", s.handleListVacancies)
	mux.HandleFunc("GET /vacancies/{id}", s.handleGetVacancy)
	mux.HandleFunc("PUT /vacancies/{id}", s.handleUpdateVacancy)
	mux.HandleFunc("DELETE /vacancies/{id}", s.handleDeleteVacancy)

	// Requirement matrix endpoints
	mux.HandleFunc("POST /vacancies/{id}/requirements", s.handleCreateRequirement)
	mux.HandleFunc("GET /vacancies/{id}/requirements", s.handleListRequirements)
	mux.HandleFunc("PUT /requirements/{id}", s.handleUpdateRequirement)
	mux.HandleFunc("DELETE /requirements/{id}", s.handleDeleteRequirement)

	// Document catalog endpoints
	mux.HandleFunc("POST /catalog", s.handleCreateCatalogDocument)
	mux.HandleFunc("GET /catalog", s.handleListCatalogDocuments)
	mux.HandleFunc("GET /catalog/{id}", s.handleGetCatalogDocument)
	mux.HandleFunc("DELETE /catalog/{id}", s.handleDeleteCatalogDocument)

	// Comparison endpoints
	mux.HandleFunc("GET /vacancies/{id}/candidates/{candidate_id}/comparison", s.handleCandidateComparison)
	mux.HandleFunc("GET /vacancies/{id}/candidates/{candidate_id}/comparison.xlsx", s.handleCandidateComparisonExcel)
	mux.HandleFunc("GET /vacancies/{id}/comparison", s.handleVacancyComparison)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For would need a
// trusted proxy list first.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
