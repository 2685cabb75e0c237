package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/Munhboldn/happyboard/internal/logging"
)

// TrustedRealIP returns middleware that sets r.RemoteAddr from the
// X-Forwarded-For or X-Real-IP header, but only when the direct peer is a
// trusted proxy. Without this check a client could spoof its address and
// bypass per-IP rate limiting.
//
// trustedProxies is a list of CIDRs (e.g. "10.0.0.0/8") or single IPs.
// With an empty list the headers are ignored entirely.
func TrustedRealIP(trustedProxies []string) func(http.Handler) http.Handler {
	nets := parseTrustedNets(trustedProxies)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(nets) > 0 && isTrustedPeer(r.RemoteAddr, nets) {
				if ip := realIPFromHeaders(r); ip != "" {
					r.RemoteAddr = ip
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parseTrustedNets converts CIDR and bare-IP strings into networks.
// Invalid entries are logged and skipped.
func parseTrustedNets(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			// Bare IP: treat as a /32 or /128
			if ip := net.ParseIP(entry); ip != nil {
				bits := 32
				if ip.To4() == nil {
					bits = 128
				}
				entry = entry + "/" + itoa(bits)
			}
		}

		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			logging.WithFields("component", "realip").Warn("skipping invalid trusted proxy entry",
				"entry", entry, "error", err)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

// isTrustedPeer reports whether the connection's peer address belongs to one
// of the trusted networks.
func isTrustedPeer(remoteAddr string, nets []*net.IPNet) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// realIPFromHeaders extracts the client IP from proxy headers.
// X-Forwarded-For wins; its first entry is the original client.
func realIPFromHeaders(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		candidate := strings.TrimSpace(parts[0])
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}
	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		if net.ParseIP(xrip) != nil {
			return xrip
		}
	}
	return ""
}

func itoa(i int) string {
	switch i {
	case 32:
		return "32"
	case 128:
		return "128"
	}
	return "32"
}
