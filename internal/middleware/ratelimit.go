package middleware

import (
	"net"
	"net/http"
	"strings"

	"health-records/internal/ratelimit"
)

// RateLimit corta con 429 cuando el caller agotó su cuota en la ventana.
// El limiter llega construido desde el router; acá solo se deriva la key.
func RateLimit(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(ClientKey(r)) {
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey identifica al caller para rate limiting:
// primer address de X-Forwarded-For, si no el host de RemoteAddr,
// y si tampoco hay, el sentinel "unknown". Detrás de un proxy que no
// setea el header, callers distintos colapsan en un mismo bucket.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			return host
		}
		return r.RemoteAddr
	}

	return "unknown"
}
