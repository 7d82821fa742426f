// Package catalog is the only externally callable surface of the portal
// catalog. It composes the authorization gate and the portal store:
// reads are public, every mutation requires the admin credential as an
// explicit capability value passed into the call.
package catalog

import (
	"context"
	"fmt"

	"github.com/nexai/hub/internal/auth"
	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/logger"
	"github.com/nexai/hub/internal/store"
)

// Service exposes list/create/update/delete over the portal store.
type Service struct {
	store  store.PortalStore
	gate   *auth.Gate
	logger logger.Logger
}

// New creates a catalog service.
func New(portals store.PortalStore, gate *auth.Gate, log logger.Logger) *Service {
	return &Service{
		store:  portals,
		gate:   gate,
		logger: log,
	}
}

// List returns the full catalog in canonical order (pinned desc, title
// asc). Public: no credential is required.
func (s *Service) List(ctx context.Context) ([]domain.Portal, error) {
	portals, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portals: %w", err)
	}
	return portals, nil
}

// Create persists a new portal. Tags are normalized (split on commas,
// trimmed, empty segments dropped) before they reach the store.
func (s *Service) Create(ctx context.Context, credential string, candidate domain.Candidate) (domain.Portal, error) {
	if !s.gate.Authorize(credential) {
		return domain.Portal{}, domain.ErrUnauthorized
	}

	candidate.Tags = domain.NormalizeTags(candidate.Tags)

	portal, err := s.store.Create(ctx, candidate)
	if err != nil {
		return domain.Portal{}, err
	}

	s.logger.Info("portal created",
		logger.String("id", portal.ID),
		logger.String("title", portal.Title))
	return portal, nil
}

// Update merges a partial update into an existing portal. Tag normalization
// applies only when the patch carries a tags value; an empty patch is a
// validation error so a no-op request is surfaced rather than silently
// bumping updated_at.
func (s *Service) Update(ctx context.Context, credential, id string, patch domain.Patch) (domain.Portal, error) {
	if !s.gate.Authorize(credential) {
		return domain.Portal{}, domain.ErrUnauthorized
	}
	if id == "" {
		return domain.Portal{}, domain.NewValidationError("id", "required field is empty")
	}
	if patch.IsEmpty() {
		return domain.Portal{}, domain.NewValidationError("patch", "no fields to update")
	}

	if patch.Tags.Present && !patch.Tags.Null {
		patch.Tags.Value = domain.NormalizeTags(patch.Tags.Value)
	}

	portal, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return domain.Portal{}, err
	}

	s.logger.Info("portal updated", logger.String("id", id))
	return portal, nil
}

// Delete removes a portal permanently. Deleting the same id twice fails
// with ErrNotFound the second time.
func (s *Service) Delete(ctx context.Context, credential, id string) error {
	if !s.gate.Authorize(credential) {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return domain.NewValidationError("id", "required field is empty")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("portal deleted", logger.String("id", id))
	return nil
}
