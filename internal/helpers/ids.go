package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseIDs reads the numeric path parameters id0, id1, ... in order.
// Every id must be a positive integer.
func ParseIDs(r *http.Request) ([]uint64, error) {
	var ids []uint64

	for i := 0; ; i++ {
		raw := chi.URLParam(r, fmt.Sprintf("id%d", i))
		if raw == "" {
			break
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
