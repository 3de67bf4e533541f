package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
)

// CheckContentType rejects request bodies that are not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType))
			return
		}

		next.ServeHTTP(w, r)
	})
}
