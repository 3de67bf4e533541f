package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("records status and bytes", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := middleware.NewSafeResponseWriter(context.Background(), rec)

		w.WriteHeader(http.StatusInternalServerError)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"message":"boom"}`)); err != nil {
			t.Fatal(err)
		}

		if w.Status() != http.StatusInternalServerError {
			t.Errorf("w.Status() = %d, want: %d", w.Status(), http.StatusInternalServerError)
		}
		if w.BytesWritten() != 18 {
			t.Errorf("w.BytesWritten() = %d, want: 18", w.BytesWritten())
		}
		if rec.Body.String() != `{"message":"boom"}` {
			t.Errorf("rec.Body.String() = %q, want the error body", rec.Body.String())
		}
	})

	t.Run("implicit status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := middleware.NewSafeResponseWriter(context.Background(), rec)

		if _, err := w.Write([]byte("ok")); err != nil {
			t.Fatal(err)
		}
		if w.Status() != http.StatusOK {
			t.Errorf("w.Status() = %d, want: %d", w.Status(), http.StatusOK)
		}
	})

	t.Run("drops writes after cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rec := httptest.NewRecorder()
		w := middleware.NewSafeResponseWriter(ctx, rec)

		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte("late")); err == nil {
			t.Error("w.Write() = nil, want: context error")
		}
		if rec.Body.Len() != 0 {
			t.Errorf("rec.Body.Len() = %d, want: 0", rec.Body.Len())
		}
	})
}

func TestInjectWriter(t *testing.T) {
	t.Parallel()

	var inner http.ResponseWriter
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		inner = w
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	middleware.InjectWriter(middleware.InjectWriter(handler)).ServeHTTP(httptest.NewRecorder(), req)

	sw, ok := inner.(*middleware.SafeResponseWriter)
	if !ok {
		t.Fatalf("handler got %T, want: *middleware.SafeResponseWriter", inner)
	}
	if _, nested := sw.Unwrap().(*middleware.SafeResponseWriter); nested {
		t.Error("InjectWriter wrapped the writer twice")
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()

	middleware.Recover(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusInternalServerError)
	}
}
