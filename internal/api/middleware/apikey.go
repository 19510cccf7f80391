package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/hyunsoo-lee/ETF-Dividend-Radar-Backend/internal/api/response"
)

// tokenTTL bounds how long an issued API token stays valid. Operators mint a
// fresh token per maintenance session rather than holding a long-lived one.
const tokenTTL = time.Hour

// APIKeyMiddleware protects administrative endpoints. The INTERNAL_API_KEY
// environment variable holds a fernet key; the X-API-Key request header must
// carry a token signed with that key and no older than tokenTTL.
// Returns 401 Unauthorized for missing or invalid tokens and 500 when the
// key itself is not configured.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawKey := os.Getenv("INTERNAL_API_KEY")
		if rawKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		key, err := fernet.DecodeKey(rawKey)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "internal error", "Authentication not loaded")
			return
		}

		token := r.Header.Get("X-API-Key")
		if token == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if msg := fernet.VerifyAndDecrypt([]byte(token), tokenTTL, []*fernet.Key{key}); msg == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateAPIToken mints a token for the given fernet key. Used by operator
// tooling and tests.
func GenerateAPIToken(rawKey string) (string, error) {
	key, err := fernet.DecodeKey(rawKey)
	if err != nil {
		return "", err
	}

	token, err := fernet.EncryptAndSign([]byte("admin"), key)
	if err != nil {
		return "", err
	}
	return string(token), nil
}
