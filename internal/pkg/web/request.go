package web

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathID parses the {id} path value of r as a positive integer.
func PathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", raw, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("id %d is not positive", id)
	}
	return id, nil
}

// QueryInt returns the integer query parameter key, or def when it is absent or malformed.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
