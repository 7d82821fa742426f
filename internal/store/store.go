// Package store defines the durable storage boundary for portals and the
// validation shared by every backend.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nexai/hub/internal/domain"
)

// PortalStore is the storage collaborator behind the catalog service. A
// backend must make create/update/delete for a given id linearizable with
// respect to reads of that id; no cross-record guarantees are required.
type PortalStore interface {
	// Create validates and persists a new portal, assigning an id and
	// timestamps as needed. Fails with domain.ErrConflict when the id is
	// already taken.
	Create(ctx context.Context, candidate domain.Candidate) (domain.Portal, error)

	// Get returns a single portal or domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Portal, error)

	// GetAll returns every portal in canonical order
	// (pinned desc, title asc).
	GetAll(ctx context.Context) ([]domain.Portal, error)

	// Update merges the patch into the stored portal. Absent fields stay
	// untouched. Fails with domain.ErrNotFound or a ValidationError.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Portal, error)

	// Delete removes the portal permanently. A second delete of the same
	// id fails with domain.ErrNotFound; deletion is not idempotent.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored portals.
	Count(ctx context.Context) (int, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// GenerateID builds a time-based portal id for candidates that omit one.
func GenerateID(now time.Time) string {
	return fmt.Sprintf("portal-%d", now.UnixMilli())
}

// NewPortal validates a candidate and materializes the portal to persist.
// Required fields must be non-blank; status defaults to active and must be
// a member of the enumeration; icon defaults to the generic symbol. The id
// is left empty when the caller supplied none so the backend can assign one
// under its own uniqueness check.
func NewPortal(candidate domain.Candidate, now time.Time) (domain.Portal, error) {
	if strings.TrimSpace(candidate.Title) == "" {
		return domain.Portal{}, domain.NewValidationError("title", "required field is empty")
	}
	if strings.TrimSpace(candidate.Description) == "" {
		return domain.Portal{}, domain.NewValidationError("description", "required field is empty")
	}
	if strings.TrimSpace(candidate.URL) == "" {
		return domain.Portal{}, domain.NewValidationError("url", "required field is empty")
	}

	status := candidate.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !status.Valid() {
		return domain.Portal{}, domain.NewValidationError("status", "unknown status "+string(status))
	}

	icon := candidate.Icon
	if icon == "" {
		icon = domain.DefaultIcon
	}

	return domain.Portal{
		ID:          candidate.ID,
		Title:       candidate.Title,
		Description: candidate.Description,
		URL:         candidate.URL,
		Tags:        candidate.Tags,
		Status:      status,
		Icon:        icon,
		Pinned:      candidate.Pinned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyPatch merges a partial update into portal in place. Absent fields
// keep their current value. Explicit nulls clear optional fields (tags ->
// empty, icon/status/pinned -> their defaults) and are rejected on required
// fields, which may never be empty once persisted.
func ApplyPatch(portal *domain.Portal, patch domain.Patch, now time.Time) error {
	if err := applyRequired(&portal.Title, patch.Title, "title"); err != nil {
		return err
	}
	if err := applyRequired(&portal.Description, patch.Description, "description"); err != nil {
		return err
	}
	if err := applyRequired(&portal.URL, patch.URL, "url"); err != nil {
		return err
	}

	if patch.Tags.Present {
		if patch.Tags.Null {
			portal.Tags = nil
		} else {
			portal.Tags = patch.Tags.Value
		}
	}

	if patch.Status.Present {
		if patch.Status.Null {
			portal.Status = domain.StatusActive
		} else {
			if !patch.Status.Value.Valid() {
				return domain.NewValidationError("status", "unknown status "+string(patch.Status.Value))
			}
			portal.Status = patch.Status.Value
		}
	}

	if patch.Icon.Present {
		if patch.Icon.Null || strings.TrimSpace(patch.Icon.Value) == "" {
			portal.Icon = domain.DefaultIcon
		} else {
			portal.Icon = patch.Icon.Value
		}
	}

	if patch.Pinned.Present {
		if patch.Pinned.Null {
			portal.Pinned = false
		} else {
			portal.Pinned = patch.Pinned.Value
		}
	}

	portal.UpdatedAt = now
	return nil
}

func applyRequired(dst *string, field domain.PatchValue[string], name string) error {
	if !field.Present {
		return nil
	}
	if field.Null {
		return domain.NewValidationError(name, "required field cannot be cleared")
	}
	if strings.TrimSpace(field.Value) == "" {
		return domain.NewValidationError(name, "required field is empty")
	}
	*dst = field.Value
	return nil
}
