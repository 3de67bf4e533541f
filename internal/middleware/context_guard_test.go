package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

func TestContextGuard(t *testing.T) {
	t.Parallel()

	canceled := func() context.Context {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	expired := func() context.Context {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		t.Cleanup(cancel)
		return ctx
	}

	tests := []struct {
		name       string
		ctx        func() context.Context
		wantCode   int
		wantCalled bool
	}{
		{"Live request reaches the handler", context.Background, http.StatusNoContent, true},
		{"Canceled request", canceled, http.StatusRequestTimeout, false},
		{"Deadline already passed", expired, http.StatusRequestTimeout, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequestWithContext(tt.ctx(), http.MethodDelete, "/api/service-orders/3", http.NoBody)
			rec := httptest.NewRecorder()
			middleware.ContextGuard(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %t, want: %t", called, tt.wantCalled)
			}

			if !tt.wantCalled {
				body := web.DecodeResponse[web.ErrorResponse](t, rec.Result())
				if body.Message != message.RequestTimeout {
					t.Errorf("body.Message = %q, want: %q", body.Message, message.RequestTimeout)
				}
			}
		})
	}
}
