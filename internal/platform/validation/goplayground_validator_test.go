package validation_test

import (
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/platform/validation"
)

type clientParams struct {
	CompanyName string  `json:"company_name" validate:"required,max=10"`
	CNPJ        string  `json:"cnpj" validate:"required,cnpj"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	State       *string `json:"state,omitempty" validate:"omitempty,len=2"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func ptr(s string) *string {
	return &s
}

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		given  clientParams
		field  string
		errMsg string
	}{
		{"Valid params", clientParams{CompanyName: "Acme", CNPJ: "11.222.333/0001-81"}, "", ""},
		{"Required field is missing", clientParams{CNPJ: "11222333000181"}, "company_name", "company_name is required"},
		{"Field exceeds max length", clientParams{CompanyName: "Acme Corporation", CNPJ: "11222333000181"}, "company_name", "company_name must be at most 10 characters long"},
		{"Invalid CNPJ", clientParams{CompanyName: "Acme", CNPJ: "11222333000171"}, "cnpj", "cnpj must be a valid CNPJ"},
		{"Invalid email", clientParams{CompanyName: "Acme", CNPJ: "11222333000181", Email: ptr("acme")}, "email", "email must be a valid email address"},
		{"Wrong state length", clientParams{CompanyName: "Acme", CNPJ: "11222333000181", State: ptr("SPX")}, "state", "state must be exactly 2 characters long"},
		{"Status not allowed", clientParams{CompanyName: "Acme", CNPJ: "11222333000181", Status: "gone"}, "status", "status must be one of: active, inactive"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if tc.field == "" {
				if errs != nil {
					t.Errorf("v.ValidateStruct(%+v) = %+v, want: nil", tc.given, errs)
				}
				return
			}

			if gotMsg := errs[tc.field]; gotMsg != tc.errMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, tc.errMsg)
			}
		})
	}
}

func TestGoPlaygroundValidator_NotBlank(t *testing.T) {
	t.Parallel()

	type prompt struct {
		Title string `json:"title" validate:"notblank"`
	}

	v := validation.NewGoPlaygroundValidator()

	errs := v.ValidateStruct(prompt{Title: "   "})
	if got, want := errs["title"], "title must not be blank"; got != want {
		t.Errorf("errs[%q] = %q, want: %q", "title", got, want)
	}

	if errs := v.ValidateStruct(prompt{Title: "Fix the pump"}); errs != nil {
		t.Errorf("v.ValidateStruct() = %+v, want: nil", errs)
	}
}
