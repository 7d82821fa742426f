package seed

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/nexai/hub/internal/domain"
)

// Mapper converts seed entries to domain candidates
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPortals converts a seed catalog to create candidates. Seed files are
// operator-authored, so invalid entries fail the whole load rather than
// being silently skipped; every bad entry is reported at once.
func (m *Mapper) MapPortals(catalog Catalog) ([]domain.Candidate, error) {
	var errs error
	candidates := make([]domain.Candidate, 0, len(catalog.Portals))

	for i, entry := range catalog.Portals {
		status, err := domain.ParseStatus(entry.Status)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seed entry %d (%s): %w", i, entry.Title, err))
			continue
		}

		candidates = append(candidates, domain.Candidate{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			URL:         entry.URL,
			Tags:        domain.NormalizeTags(entry.Tags),
			Status:      status,
			Icon:        entry.Icon,
			Pinned:      entry.Pinned,
		})
	}

	if errs != nil {
		return nil, errs
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("seed file contains no portals")
	}
	return candidates, nil
}
