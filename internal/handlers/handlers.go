// Package handlers maps the REST surface onto the persistence layer. Each
// entity gets a handler struct holding the shared *gorm.DB and the snapshot
// store; routing lives in internal/server.
package handlers

import (
	"net/http"
	"strconv"
)

// pathID parses the {id} path value. A non-numeric or non-positive id is
// treated the same as an absent row (the caller answers 404).
func pathID(r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
