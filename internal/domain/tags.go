package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TagList decodes a JSON tags field that may be either an array of strings
// or a single comma-delimited string. Admin forms submit both shapes
// depending on the input widget.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to decode tag array: %w", err)
		}
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("tags must be an array of strings or a string: %w", err)
	}
	*t = []string{single}
	return nil
}

// NormalizeTags flattens raw tag input into clean tags: each element is
// split on commas, segments are whitespace-trimmed, and empty segments are
// dropped, in that order. Duplicates survive; the data layer permits them.
func NormalizeTags(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, segment := range strings.Split(value, ",") {
			if tag := strings.TrimSpace(segment); tag != "" {
				out = append(out, tag)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Vocabulary returns the deduplicated union of every portal's tags, ordered
// for filter controls: tags listed in preferred come first in table order,
// all remaining tags follow alphabetically. Unranked tags always sort last;
// the ordering is deterministic regardless of input order.
func Vocabulary(portals []Portal, preferred []string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range portals {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	rank := make(map[string]int, len(preferred))
	for i, tag := range preferred {
		rank[tag] = i
	}

	sort.Slice(tags, func(i, j int) bool {
		ri, iRanked := rank[tags[i]]
		rj, jRanked := rank[tags[j]]
		switch {
		case iRanked && jRanked:
			return ri < rj
		case iRanked:
			return true
		case jRanked:
			return false
		default:
			return tags[i] < tags[j]
		}
	})
	return tags
}

// ToggleTag flips tag in the selected set: present -> removed,
// absent -> appended. Selecting twice is a no-op pair, never an
// accumulation.
func ToggleTag(selected []string, tag string) []string {
	for i, t := range selected {
		if t == tag {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			return append(out, selected[i+1:]...)
		}
	}
	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, tag)
}
