package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/logger"
	"github.com/nexai/hub/internal/store"
)

// Seeder populates an empty store from a seed file. It runs once at
// startup; a non-empty store is left untouched so operator edits survive
// restarts.
type Seeder struct {
	loader *Loader
	mapper *Mapper
	store  store.PortalStore
	logger logger.Logger
}

// NewSeeder creates a seeder for the given seed file.
func NewSeeder(seedFile string, portals store.PortalStore, log logger.Logger) *Seeder {
	return &Seeder{
		loader: NewLoader(seedFile),
		mapper: NewMapper(),
		store:  portals,
		logger: log,
	}
}

// Run seeds the store when it is empty. Individual id conflicts are
// tolerated (another replica may have seeded first); validation failures
// are not.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count portals before seeding: %w", err)
	}
	if count > 0 {
		s.logger.Debug("store already populated, skipping seed",
			logger.Int("portals", count))
		return nil
	}

	catalog, err := s.loader.Load()
	if err != nil {
		return err
	}

	candidates, err := s.mapper.MapPortals(catalog)
	if err != nil {
		return err
	}

	created := 0
	for _, candidate := range candidates {
		if _, err := s.store.Create(ctx, candidate); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.logger.Warn("seed portal already exists, skipping",
					logger.String("id", candidate.ID))
				continue
			}
			return fmt.Errorf("failed to seed portal %q: %w", candidate.Title, err)
		}
		created++
	}

	s.logger.Info("seeded portal catalog",
		logger.Int("portals", created))
	return nil
}
