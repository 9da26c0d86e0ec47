package utils

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// ParseLimit reads the "limit" query parameter, falling back to def when
// absent or unusable and capping the result at max.
func ParseLimit(r *http.Request, def, max int64) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
