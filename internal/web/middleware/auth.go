package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Munhboldn/happyboard/internal/logging"
)

// APIKeyAuth returns middleware that requires a valid X-API-Key header.
// When required is false the middleware is a no-op, keeping the route
// wiring identical in open and locked-down deployments.
func APIKeyAuth(required bool, keys []string) func(http.Handler) http.Handler {
	keySet := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			keySet[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !required {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if provided == "" || !keyMatches(provided, keySet) {
				logging.FromContext(r.Context()).Warn("rejected request with missing or invalid API key",
					"path", r.URL.Path, "remote", r.RemoteAddr)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"missing or invalid API key"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// keyMatches compares the provided key against each accepted key in constant
// time per comparison.
func keyMatches(provided string, keys map[string]struct{}) bool {
	for k := range keys {
		if len(k) == len(provided) &&
			subtle.ConstantTimeCompare([]byte(k), []byte(provided)) == 1 {
			return true
		}
	}
	return false
}
