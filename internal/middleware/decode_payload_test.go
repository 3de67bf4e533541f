package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
	"github.com/google/go-cmp/cmp"
)

type technicianPayload struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Available bool   `json:"available"`
}

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		limit      int64
		wantCode   int
		wantMsg    string
		wantErrors map[string]string
		want       *technicianPayload
	}{
		{
			name:     "Valid payload",
			body:     `{"name":"Ana Souza","specialty":"Electrical","available":true}`,
			limit:    256,
			wantCode: http.StatusOK,
			want:     &technicianPayload{Name: "Ana Souza", Specialty: "Electrical", Available: true},
		},
		{
			name:     "Body over the limit",
			body:     `{"name":"Ana Souza","specialty":"Electrical"}`,
			limit:    8,
			wantCode: http.StatusRequestEntityTooLarge,
			wantMsg:  message.PayloadTooLarge,
		},
		{
			name:       "Unknown field",
			body:       `{"name":"Ana Souza","salary":1000}`,
			limit:      256,
			wantCode:   http.StatusBadRequest,
			wantMsg:    message.InvalidInput,
			wantErrors: map[string]string{"salary": "unknown field"},
		},
		{
			name:     "Two json values",
			body:     `{"name":"Ana"}{"name":"Bruno"}`,
			limit:    256,
			wantCode: http.StatusBadRequest,
			wantMsg:  message.InvalidInput,
		},
		{
			name:     "Wrong type",
			body:     `{"name":"Ana","available":"yes"}`,
			limit:    256,
			wantCode: http.StatusBadRequest,
			wantMsg:  message.InvalidInput,
		},
		{
			name:     "Truncated json",
			body:     `{"name"`,
			limit:    256,
			wantCode: http.StatusBadRequest,
			wantMsg:  message.InvalidInput,
		},
		{
			name:     "Empty body",
			body:     ``,
			limit:    256,
			wantCode: http.StatusBadRequest,
			wantMsg:  message.InvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *technicianPayload
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[technicianPayload](r.Context())
				if err != nil {
					t.Errorf("web.ParamsFromContext() = %v", err)
					return
				}
				got = &params
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/technicians", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[technicianPayload](tt.limit)(handler).ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantCode {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantCode)
			}

			if tt.want != nil {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("decoded payload mismatch (-want +got):\n%s", diff)
				}
				return
			}

			if got != nil {
				t.Errorf("handler received %+v, want it not called", got)
			}

			web.AssertContentType(t, res)
			body := web.DecodeResponse[web.ErrorResponse](t, res)
			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
			}
			if diff := cmp.Diff(tt.wantErrors, body.Errors); diff != "" {
				t.Errorf("body.Errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
