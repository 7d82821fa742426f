package domain

import (
	"sort"
	"time"
)

// DefaultIcon is the generic icon key assigned when a candidate omits one.
const DefaultIcon = "puzzle"

// Portal is a cataloged link entry: an internal tool or service reachable
// through a URL, curated by the administrator and browsable by anyone.
type Portal struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier. Caller-supplied on create,
	// or server-generated (time-based) when absent.
	ID string `json:"id"`

	// ─────────────────────────────
	// Descriptive fields
	// ─────────────────────────────

	// Title is the display name. Never empty once persisted.
	Title string `json:"title"`

	// Description is a short summary. Never empty once persisted.
	Description string `json:"description"`

	// URL is the target link. Stored as-is, never validated as a URI.
	URL string `json:"url"`

	// Tags is an ordered list of labels. Duplicates are permitted here;
	// deduplication belongs to the filter engine, not the store.
	Tags []string `json:"tags"`

	// Status is always a member of the Statuses enumeration.
	Status Status `json:"status"`

	// Icon is an opaque key into an external icon vocabulary.
	Icon string `json:"icon"`

	// Pinned portals sort before everything else.
	Pinned bool `json:"pinned"`

	// ─────────────────────────────
	// Metadata (store-owned)
	// ─────────────────────────────

	// CreatedAt is set once by the store on create.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the store on every successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// Candidate carries caller-supplied fields for a create. Title, Description
// and URL are required; everything else has a default.
type Candidate struct {
	ID          string
	Title       string
	Description string
	URL         string
	Tags        []string
	Status      Status
	Icon        string
	Pinned      bool
}

// SortPortals orders portals canonically: pinned first, then title
// ascending (case-sensitive), then id ascending so the order is total even
// for identical titles. The store and the filter engine share this order so
// an unfiltered view is byte-for-byte stable.
func SortPortals(portals []Portal) {
	sort.Slice(portals, func(i, j int) bool {
		a, b := portals[i], portals[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}
