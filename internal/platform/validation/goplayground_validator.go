package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/cnpj"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	// TagCNPJ checks that a field holds a valid CNPJ.
	TagCNPJ = "cnpj"
	// TagNotBlank rejects strings made only of whitespace.
	TagNotBlank = "notblank"
)

type goPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*goPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// field names in messages follow the json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(TagCNPJ, func(fl validator.FieldLevel) bool {
		return cnpj.Valid(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagCNPJ, err))
	}

	if err := v.RegisterValidation(TagNotBlank, validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagNotBlank, err))
	}

	return &goPlaygroundValidator{
		v: v,
	}
}

func (va *goPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return nil
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case TagNotBlank:
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	case TagCNPJ:
		return fmt.Sprintf("%s must be a valid CNPJ", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
