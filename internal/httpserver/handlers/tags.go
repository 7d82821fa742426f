package handlers

import (
	"net/http"

	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/httpserver/deps"
	"github.com/nexai/hub/internal/logger"
)

type tagsResponse struct {
	OK   bool     `json:"ok"`
	Tags []string `json:"tags"`
}

// Tags returns the tag vocabulary: the deduplicated union of every
// portal's tags, preferred tags first, the rest alphabetically. Filter
// controls are built from this list.
func Tags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portals, err := d.Catalog.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list portals for tag vocabulary", logger.Error(err))
			writeError(w, err)
			return
		}

		tags := domain.Vocabulary(portals, d.TagOrder)
		if tags == nil {
			tags = []string{}
		}
		writeJSON(w, http.StatusOK, tagsResponse{OK: true, Tags: tags})
	}
}
