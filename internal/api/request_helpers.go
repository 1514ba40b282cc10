package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID extracts the {id} route parameter as an int64.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return id, nil
}

// queryPage extracts the optional "pagina" query parameter. A missing
// parameter means the first page; a non-integer value is an error.
func queryPage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("pagina")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid pagina %q: %w", raw, err)
	}
	return page, nil
}
