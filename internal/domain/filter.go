package domain

import "strings"

// Filter is the caller-chosen view state over a catalog snapshot: a
// free-text query, a set of required tags and a status selector. The zero
// value imposes no constraint.
type Filter struct {
	// Query is matched case-insensitively as a substring of the portal's
	// title, description and tags.
	Query string

	// Tags lists required tags. A portal survives only if it carries every
	// one of them (AND semantics).
	Tags []string

	// Status keeps only portals with exactly this status. Empty or
	// StatusAll disables the predicate.
	Status Status
}

// Apply runs the filter over a snapshot and returns the visible subset in
// canonical order. Pure function: the input slice is never mutated, so it
// is safe to re-run on every keystroke against the last fetched snapshot.
func (f Filter) Apply(portals []Portal) []Portal {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Portal, 0, len(portals))
	for _, p := range portals {
		if !f.matchStatus(p) || !f.matchTags(p) || !matchQuery(p, query) {
			continue
		}
		out = append(out, p)
	}

	SortPortals(out)
	return out
}

func (f Filter) matchStatus(p Portal) bool {
	if f.Status == "" || f.Status == StatusAll {
		return true
	}
	return p.Status == f.Status
}

func (f Filter) matchTags(p Portal) bool {
	for _, required := range f.Tags {
		found := false
		for _, tag := range p.Tags {
			if tag == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchQuery(p Portal, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " "))
	return strings.Contains(haystack, query)
}
