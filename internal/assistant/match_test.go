package assistant

import (
	"strings"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/technician"
)

func TestNormalizePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reply, want string
	}{
		{"URGENT", "URGENT"},
		{"high", "HIGH"},
		{"Priority: Medium.", "MEDIUM"},
		{"**LOW**\n", "LOW"},
		{"HIGH or URGENT", "HIGH"},
		{"  it depends  ", "it depends"},
		{"FOLLOWUP", "FOLLOWUP"},
	}

	for _, tc := range tests {
		t.Run(tc.reply, func(t *testing.T) {
			t.Parallel()

			if got := normalizePriority(tc.reply); got != tc.want {
				t.Errorf("normalizePriority(%q) = %q, want: %q", tc.reply, got, tc.want)
			}
		})
	}
}

func TestMatchTechnician(t *testing.T) {
	t.Parallel()

	technicians := []technician.Technician{
		{Name: "Ana"},
		{Name: "Ana Souza"},
		{Name: "Carlos Lima"},
	}

	tests := []struct {
		name, reply, want string
	}{
		{"exact name", "Carlos Lima", "Carlos Lima"},
		{"case insensitive", "carlos lima", "Carlos Lima"},
		{"numbered with specialty", "2. Ana Souza (Plumbing)", "Ana Souza"},
		{"shorter name", "Ana", "Ana"},
		{"none", "NONE", ""},
		{"none with period", "None.", ""},
		{"unknown name", "Pedro Alves", ""},
		{"blank", "  ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := matchTechnician(tc.reply, technicians)
			var gotName string
			if got != nil {
				gotName = got.Name
			}
			if gotName != tc.want {
				t.Errorf("matchTechnician(%q) = %q, want: %q", tc.reply, gotName, tc.want)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := cacheKey(KindPriority, "leak")
	if a != cacheKey(KindPriority, "leak") {
		t.Error("cacheKey() is not deterministic")
	}
	if a == cacheKey(KindEstimate, "leak") {
		t.Error("cacheKey() ignores the kind")
	}
	if len(a) != 64 {
		t.Errorf("len(cacheKey()) = %d, want: 64", len(a))
	}
}

func TestBuildTechnicianPrompt(t *testing.T) {
	t.Parallel()

	got := buildTechnicianPrompt("leaking pipe", []string{"Ana (Plumbing)", "Carlos (General)"})
	for _, want := range []string{"Job: leaking pipe", "1. Ana (Plumbing)\n2. Carlos (General)", "NONE"} {
		if !strings.Contains(got, want) {
			t.Errorf("buildTechnicianPrompt() = %q, want it to contain %q", got, want)
		}
	}
}
