package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func remoteAddrEcho() (http.Handler, *string) {
	var seen string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	})
	return h, &seen
}

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "trusted proxy with forwarded-for",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4, 10.1.2.3"},
			want:       "198.51.100.4",
		},
		{
			name:       "trusted proxy with real-ip",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "untrusted peer keeps remote addr",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.5:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4"},
			want:       "203.0.113.5:5000",
		},
		{
			name:       "no trusted proxies ignores headers",
			trusted:    nil,
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4"},
			want:       "10.1.2.3:5000",
		},
		{
			name:       "bare IP entry",
			trusted:    []string{"10.1.2.3"},
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4"},
			want:       "198.51.100.4",
		},
		{
			name:       "garbage header is ignored",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "10.1.2.3:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			echo, seen := remoteAddrEcho()
			handler := TrustedRealIP(tt.trusted)(echo)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if *seen != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", *seen, tt.want)
			}
		})
	}
}

func TestParseTrustedNetsSkipsInvalid(t *testing.T) {
	nets := parseTrustedNets([]string{"10.0.0.0/8", "not-a-cidr", "", " 192.168.0.0/16 "})
	if len(nets) != 2 {
		t.Errorf("parsed %d networks, want 2", len(nets))
	}
}
