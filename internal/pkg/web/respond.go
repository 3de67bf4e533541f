package web

import (
	"net/http"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
)

func RespondOK[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusOK, msg, data)
}

func RespondCreated[T any](w http.ResponseWriter, msg *string, data *T) {
	OK(w, http.StatusCreated, msg, data)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusUnauthorized, err, msg, nil)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusNotFound, err, msg, nil)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error) {
	Fail(w, http.StatusUnsupportedMediaType, err, message.UnsupportedMediaType, nil)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error) {
	Fail(w, http.StatusRequestEntityTooLarge, err, message.PayloadTooLarge, nil)
}

func RespondRequestTimeout(w http.ResponseWriter, err error) {
	Fail(w, http.StatusRequestTimeout, err, message.RequestTimeout, nil)
}

// RespondInternalServerError hides err behind a generic message.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.Unexpected, nil)
}

func RespondServiceUnavailable(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusServiceUnavailable, err, msg, nil)
}
