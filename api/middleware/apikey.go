package middleware

import (
	"net/http"

	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"

	"github.com/MonkyMars/gecho"
)

// APIKeyHeader carries the shared secret on every protected call.
const APIKeyHeader = "x-api-key"

// RequireAPIKey gates a route group behind the configured shared secret.
// A missing or mismatched key short-circuits with 401 before validation or
// storage run; there is no session state and no expiry.
func (mw *Middleware) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(APIKeyHeader) != mw.cfg.Auth.APIKey {
			mw.logger.Warn("Rejected request with invalid API key",
				gecho.Field("method", r.Method),
				gecho.Field("path", r.URL.Path))
			lib.WriteJSON(w, http.StatusUnauthorized, structs.ErrorResponse{Error: "Invalid API key"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
