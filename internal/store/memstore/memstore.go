// Package memstore provides an in-memory PortalStore. It backs local
// development and tests; the map plus a single mutex is the serialization
// point that keeps per-id mutations linearizable.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/store"
)

// Store is a mutex-guarded map of portals keyed by id.
type Store struct {
	mu      sync.RWMutex
	portals map[string]domain.Portal
	timeNow func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		portals: make(map[string]domain.Portal),
		timeNow: time.Now,
	}
}

// WithClock overrides the store clock. Tests use this to pin timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.timeNow = now
	return s
}

func (s *Store) Create(_ context.Context, candidate domain.Candidate) (domain.Portal, error) {
	now := s.timeNow()
	portal, err := store.NewPortal(candidate, now)
	if err != nil {
		return domain.Portal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if portal.ID == "" {
		portal.ID = s.uniqueIDLocked(now)
	} else if _, exists := s.portals[portal.ID]; exists {
		return domain.Portal{}, domain.ErrConflict
	}

	s.portals[portal.ID] = clone(portal)
	return portal, nil
}

func (s *Store) Get(_ context.Context, id string) (domain.Portal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portal, ok := s.portals[id]
	if !ok {
		return domain.Portal{}, domain.ErrNotFound
	}
	return clone(portal), nil
}

func (s *Store) GetAll(_ context.Context) ([]domain.Portal, error) {
	s.mu.RLock()
	portals := make([]domain.Portal, 0, len(s.portals))
	for _, portal := range s.portals {
		portals = append(portals, clone(portal))
	}
	s.mu.RUnlock()

	domain.SortPortals(portals)
	return portals, nil
}

func (s *Store) Update(_ context.Context, id string, patch domain.Patch) (domain.Portal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	portal, ok := s.portals[id]
	if !ok {
		return domain.Portal{}, domain.ErrNotFound
	}

	merged := clone(portal)
	if err := store.ApplyPatch(&merged, patch, s.timeNow()); err != nil {
		return domain.Portal{}, err
	}

	s.portals[id] = clone(merged)
	return merged, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.portals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.portals, id)
	return nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.portals), nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

// uniqueIDLocked generates a time-based id, bumping the timestamp while it
// collides. Millisecond ids collide easily under test clocks.
func (s *Store) uniqueIDLocked(now time.Time) string {
	id := store.GenerateID(now)
	for _, exists := s.portals[id]; exists; _, exists = s.portals[id] {
		now = now.Add(time.Millisecond)
		id = store.GenerateID(now)
	}
	return id
}

func clone(p domain.Portal) domain.Portal {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}
