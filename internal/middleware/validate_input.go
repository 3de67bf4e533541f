package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
	"github.com/ferdiebergado/legacyprocs/internal/platform/validation"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidateInput checks the payload stored by DecodePayload.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondBadRequest(w, ErrInvalidInput, message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
