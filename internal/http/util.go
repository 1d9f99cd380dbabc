package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// pagination reads limit/offset query parameters with bounds applied.
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// uuidParam reads a UUID path parameter. Rejecting malformed IDs here
// keeps them from reaching Postgres as invalid uuid casts.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if _, err := uuid.Parse(v); err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     fmt.Errorf("%s must be a valid UUID", name),
		})
		return "", false
	}
	return v, true
}
