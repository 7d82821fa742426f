package handlers

import (
	"net/http"

	"github.com/nexai/hub/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	Backend       string `json:"backend,omitempty"`
	PortalsStored *int   `json:"portals_stored,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra exposes coarse component status for operators: store backend,
// reachability and portal count.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeStatus := componentStatus{OK: true, Backend: d.StoreBackend}
		if err := d.Store.Ping(r.Context()); err != nil {
			storeStatus.OK = false
			storeStatus.Error = err.Error()
		} else if count, err := d.Store.Count(r.Context()); err == nil {
			storeStatus.PortalsStored = &count
		}

		components := map[string]componentStatus{
			"store":   storeStatus,
			"catalog": {OK: storeStatus.OK},
		}

		mode := "serving"
		if !storeStatus.OK {
			mode = "degraded"
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       mode,
			Components: components,
		})
	}
}
