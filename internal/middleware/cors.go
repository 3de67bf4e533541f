package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/ferdiebergado/legacyprocs/internal/config"
)

const (
	HeaderOrigin       = "Origin"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"
	HeaderVary         = "Vary"
)

// CORS allows the configured origins. Preflight requests end here with 204.
func CORS(cfg *config.CORS) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(HeaderVary, HeaderOrigin)

			origin := r.Header.Get(HeaderOrigin)
			if origin != "" && slices.Contains(cfg.AllowedOrigins, origin) {
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Set(HeaderAllowMethods, methods)
				w.Header().Set(HeaderAllowHeaders, headers)
				w.Header().Set(HeaderAllowCreds, "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
