// Package web provides the HTTP server and handlers for the happiness
// dashboard. Handlers serve a JSON API consumed by the embedded single-page
// frontend.
package web

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Munhboldn/happyboard/internal/config"
	"github.com/Munhboldn/happyboard/internal/happiness"
	"github.com/Munhboldn/happyboard/internal/web/middleware"
)

//go:embed static
var staticFS embed.FS

// Server wraps the HTTP server, router, and application dependencies.
type Server struct {
	data   *happiness.Dataset
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new web server with all routes and middleware configured.
func NewServer(data *happiness.Dataset, cfg *config.Config) *Server {
	s := &Server{
		data:   data,
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupMiddleware configures the middleware stack. Order matters: request ID
// first so every later log line carries it, real IP resolution before rate
// limiting so the limiter keys on the true client.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(s.securityHeaders)

	if s.cfg.Rate.Enabled {
		s.router.Use(s.rateLimiter())
	}
}

// setupRoutes registers all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing from binary: " + err.Error())
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.FS(staticContent))))

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(s.cfg.Security.RequireAPIKey, s.cfg.Security.APIKeys))

		r.Get("/meta", s.handleMeta)
		r.Get("/summary", s.handleSummary)
		r.Get("/trends", s.handleTrends)
		r.Get("/compare", s.handleCompare)
		r.Get("/map", s.handleMap)
		r.Get("/insights", s.handleInsights)
		r.Get("/table", s.handleTable)
		r.Get("/export", s.handleExport)
		r.Get("/quote", s.handleQuote)
	})
}

// securityHeaders adds standard security headers to all responses.
func (s *Server) securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if s.cfg.Security.EnableCSP {
			w.Header().Set("Content-Security-Policy",
				"default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimiter returns per-IP token bucket rate limiting middleware.
// Buckets refill continuously at the configured rate and idle entries are
// evicted by a background sweep.
func (s *Server) rateLimiter() func(http.Handler) http.Handler {
	type bucket struct {
		tokens   float64
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	limit := float64(s.cfg.Rate.RequestsPerMinute)
	refillPerSec := limit / 60.0

	// Evict buckets idle for more than 10 minutes.
	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			cutoff := time.Now().Add(-10 * time.Minute)
			for ip, b := range buckets {
				if b.lastSeen.Before(cutoff) {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			b, ok := buckets[ip]
			now := time.Now()
			if !ok {
				b = &bucket{tokens: limit, lastSeen: now}
				buckets[ip] = b
			}

			elapsed := now.Sub(b.lastSeen).Seconds()
			b.tokens += elapsed * refillPerSec
			if b.tokens > limit {
				b.tokens = limit
			}
			b.lastSeen = now

			allowed := b.tokens >= 1
			if allowed {
				b.tokens--
			}
			mu.Unlock()

			if !allowed {
				w.Header().Set("Retry-After", "60")
				respondErrorMessage(w, r, http.StatusTooManyRequests,
					"rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Start begins listening for HTTP requests. Blocks until the server stops.
func (s *Server) Start() error {
	slog.Info("starting HTTP server",
		"addr", s.server.Addr,
		"records", s.data.Len(),
		"countries", len(s.data.Countries()))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
