package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/platform/jwt"
)

func TestRequireToken(t *testing.T) {
	t.Parallel()

	const validToken = "valid.jwt.token"

	signer := &jwt.StubSigner{
		VerifyFunc: func(token string) (*jwt.Claims, error) {
			if token != validToken {
				return nil, errors.New("bad signature")
			}
			return &jwt.Claims{Subject: "frontend"}, nil
		},
	}

	tests := []struct {
		name, header, wantSubject string
		wantCode                  int
	}{
		{"valid token", "Bearer " + validToken, "frontend", http.StatusOK},
		{"invalid token", "Bearer forged", "", http.StatusUnauthorized},
		{"missing header", "", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + validToken, "", http.StatusUnauthorized},
		{"empty token", "Bearer ", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotSubject string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := middleware.ClaimsFromContext(r.Context())
				if !ok {
					http.Error(w, "no claims", http.StatusInternalServerError)
					return
				}
				gotSubject = claims.Subject
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients", http.NoBody)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			middleware.RequireToken(signer)(handler).ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tc.wantCode)
			}
			if gotSubject != tc.wantSubject {
				t.Errorf("claims.Subject = %q, want: %q", gotSubject, tc.wantSubject)
			}
		})
	}
}
