package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// Header de credencial para callers externos.
const APIKeyHeader = "X-API-Key"

// APIKeyGate:
//   - Sin header => caller interno (la UI de primera parte), pasa directo.
//     Sí: la ausencia del header ES la señal de confianza. Es débil a propósito,
//     se reproduce el contrato original tal cual (ver DESIGN.md).
//   - Con header => debe coincidir con el secreto compartido configurado.
//     Secreto vacío o mismatch => 401, fail closed.
func APIKeyGate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
