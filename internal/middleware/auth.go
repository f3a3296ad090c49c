package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/config"
)

const apiKeyHeader = "api_key"

// APIKeyAuth guards mutating requests with the "api_key" header.
// GET, HEAD and OPTIONS pass through. With no keys configured the guard is off.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		keys = append(keys, []byte(k))
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get(apiKeyHeader)
			if apiKey == "" {
				deny(w, http.StatusUnauthorized, "API key required")
				return
			}
			if !knownKey(keys, []byte(apiKey)) {
				deny(w, http.StatusForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func knownKey(keys [][]byte, candidate []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, candidate)
	}
	return found == 1
}

// deny writes the same {"detail": ...} body the handlers use.
func deny(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
