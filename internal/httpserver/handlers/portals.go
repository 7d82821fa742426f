package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexai/hub/internal/auth"
	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/httpserver/deps"
	"github.com/nexai/hub/internal/logger"
)

type listResponse struct {
	OK      bool            `json:"ok"`
	Portals []domain.Portal `json:"portals"`
}

type mutationResponse struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// ListPortals returns the catalog. Without query parameters the response is
// the canonical list (pinned desc, title asc); with q / tags / status it is
// the filter engine's view of that same list.
func ListPortals(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portals, err := d.Catalog.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list portals", logger.Error(err))
			writeError(w, err)
			return
		}

		filter, err := filterFromQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}
		portals = filter.Apply(portals)

		writeJSON(w, http.StatusOK, listResponse{OK: true, Portals: portals})
	}
}

func filterFromQuery(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()

	status := domain.StatusAll
	if raw := q.Get("status"); raw != "" && raw != string(domain.StatusAll) {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		status = parsed
	}

	return domain.Filter{
		Query:  q.Get("q"),
		Tags:   domain.NormalizeTags(q["tags"]),
		Status: status,
	}, nil
}

type createRequest struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Tags        domain.TagList `json:"tags"`
	Status      string         `json:"status"`
	Icon        string         `json:"icon"`
	Pinned      bool           `json:"pinned"`
}

// CreatePortal creates a new portal. Admin only.
func CreatePortal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err)))
			return
		}

		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		credential := auth.BearerToken(r.Header.Get("Authorization"))
		portal, err := d.Catalog.Create(r.Context(), credential, domain.Candidate{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			URL:         req.URL,
			Tags:        req.Tags,
			Status:      status,
			Icon:        req.Icon,
			Pinned:      req.Pinned,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, mutationResponse{OK: true, ID: portal.ID, Message: "portal created"})
	}
}

// UpdatePortal merges a partial update into an existing portal. Admin only.
// Fields absent from the body keep their stored value; explicit nulls clear
// optional fields.
func UpdatePortal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var patch domain.Patch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err)))
			return
		}

		credential := auth.BearerToken(r.Header.Get("Authorization"))
		if _, err := d.Catalog.Update(r.Context(), credential, id, patch); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: id, Message: "portal updated"})
	}
}

// DeletePortal removes a portal permanently. Admin only.
func DeletePortal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		credential := auth.BearerToken(r.Header.Get("Authorization"))
		if err := d.Catalog.Delete(r.Context(), credential, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mutationResponse{OK: true, ID: id, Message: "portal deleted"})
	}
}
