// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Munhboldn/happyboard/internal/logging"
)

// Logger logs each HTTP request with method, path, status, bytes written and
// duration. Static asset requests are logged at debug level to keep the info
// stream readable.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log := logging.FromContext(r.Context())
		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", r.RemoteAddr,
		}

		switch {
		case ww.Status() >= 500:
			log.Error("request", args...)
		case ww.Status() >= 400:
			log.Warn("request", args...)
		case isStaticAsset(r.URL.Path):
			log.Debug("request", args...)
		default:
			log.Info("request", args...)
		}
	})
}

func isStaticAsset(path string) bool {
	return len(path) >= 8 && path[:8] == "/static/"
}
