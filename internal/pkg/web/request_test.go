package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		given   string
		want    int64
		wantErr bool
	}{
		{"Valid id", "42", 42, false},
		{"Not a number", "abc", 0, true},
		{"Zero", "0", 0, true},
		{"Negative", "-3", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/clients/"+tc.given, nil)
			req.SetPathValue("id", tc.given)

			got, err := web.PathID(req)
			if (err != nil) != tc.wantErr {
				t.Fatalf("web.PathID() error = %v, wantErr: %t", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("web.PathID() = %d, want: %d", got, tc.want)
			}
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/service-orders/paged?page=3&size=abc", nil)

	if got := web.QueryInt(req, "page", 1); got != 3 {
		t.Errorf("web.QueryInt(page) = %d, want: %d", got, 3)
	}
	if got := web.QueryInt(req, "size", 10); got != 10 {
		t.Errorf("web.QueryInt(size) = %d, want: %d", got, 10)
	}
	if got := web.QueryInt(req, "filter", 7); got != 7 {
		t.Errorf("web.QueryInt(filter) = %d, want: %d", got, 7)
	}
}
