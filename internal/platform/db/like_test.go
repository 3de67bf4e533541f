package db_test

import (
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
)

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, given, want string
	}{
		{"Empty", "", "%"},
		{"Blank", "   ", "%"},
		{"Lower-cased", "Acme", "%acme%"},
		{"Wildcards escaped", "50%_off", `%50\%\_off%`},
		{"Backslash escaped", `a\b`, `%a\\b%`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := db.ContainsPattern(tc.given); got != tc.want {
				t.Errorf("db.ContainsPattern(%q) = %q, want: %q", tc.given, got, tc.want)
			}
		})
	}
}
