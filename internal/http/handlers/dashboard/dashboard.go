// Package dashboard serves the three headline counters.
package dashboard

import (
	"net/http"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
	"github.com/aanand-mishra/employee-dashboard/internal/utils/response"
)

type StatsSource interface {
	Stats() types.Stats
}

// Stats handles GET /api/dashboard
//
//	{ "total": 2, "active": 2, "inactive": 0 }
func Stats(src StatsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, src.Stats())
	}
}
