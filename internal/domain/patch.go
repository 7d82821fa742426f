package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PatchValue is a tri-state update field. A partial update must be able to
// tell apart three inputs that plain pointers conflate:
//
//   - absent        -> keep the current value
//   - explicit null -> clear the value (rejected for required fields)
//   - a value       -> replace the current value
type PatchValue[T any] struct {
	Present bool // the field appeared in the input
	Null    bool // the field was an explicit null
	Value   T    // meaningful only when Present && !Null
}

// Set returns a PatchValue carrying v.
func Set[T any](v T) PatchValue[T] {
	return PatchValue[T]{Present: true, Value: v}
}

// Clear returns an explicit-null PatchValue.
func Clear[T any]() PatchValue[T] {
	return PatchValue[T]{Present: true, Null: true}
}

// Patch describes a partial update of a portal. Zero-value fields are
// absent and leave the stored value untouched.
type Patch struct {
	Title       PatchValue[string]
	Description PatchValue[string]
	URL         PatchValue[string]
	Tags        PatchValue[[]string]
	Status      PatchValue[Status]
	Icon        PatchValue[string]
	Pinned      PatchValue[bool]
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return !p.Title.Present && !p.Description.Present && !p.URL.Present &&
		!p.Tags.Present && !p.Status.Present && !p.Icon.Present && !p.Pinned.Present
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes a patch from a JSON object, recording per-field
// presence. Unknown keys are ignored. The tags field accepts either an
// array of strings or a single comma-delimited string.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode patch object: %w", err)
	}

	for key, raw := range fields {
		isNull := bytes.Equal(bytes.TrimSpace(raw), jsonNull)
		switch key {
		case "title":
			if err := decodePatchString(&p.Title, raw, isNull); err != nil {
				return err
			}
		case "description":
			if err := decodePatchString(&p.Description, raw, isNull); err != nil {
				return err
			}
		case "url":
			if err := decodePatchString(&p.URL, raw, isNull); err != nil {
				return err
			}
		case "icon":
			if err := decodePatchString(&p.Icon, raw, isNull); err != nil {
				return err
			}
		case "tags":
			if isNull {
				p.Tags = Clear[[]string]()
				continue
			}
			var tags TagList
			if err := json.Unmarshal(raw, &tags); err != nil {
				return fmt.Errorf("failed to decode tags: %w", err)
			}
			p.Tags = Set([]string(tags))
		case "status":
			if isNull {
				p.Status = Clear[Status]()
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("failed to decode status: %w", err)
			}
			p.Status = Set(Status(s))
		case "pinned":
			if isNull {
				p.Pinned = Clear[bool]()
				continue
			}
			var b bool
			if err := json.Unmarshal(raw, &b); err != nil {
				return fmt.Errorf("failed to decode pinned: %w", err)
			}
			p.Pinned = Set(b)
		}
	}
	return nil
}

func decodePatchString(dst *PatchValue[string], raw json.RawMessage, isNull bool) error {
	if isNull {
		*dst = Clear[string]()
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("failed to decode string field: %w", err)
	}
	*dst = Set(s)
	return nil
}
