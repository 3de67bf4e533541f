package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/security"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
	"github.com/ferdiebergado/legacyprocs/internal/platform/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

type claimsKey struct{}

// RequireToken rejects requests without a valid bearer token.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, fmt.Errorf("%w: %v", ErrInvalidToken, err), message.Unauthorized)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, fmt.Errorf("%w: %v", ErrInvalidToken, err), message.Unauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims of the token accepted by RequireToken.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok
}
