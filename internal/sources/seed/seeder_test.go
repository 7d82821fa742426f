package seed

import (
	"context"
	"testing"

	"github.com/nexai/hub/internal/domain"
	"github.com/nexai/hub/internal/logger"
	"github.com/nexai/hub/internal/store/memstore"
)

const seedYAML = `---
portals:
  - id: ocr
    title: "Express OCR"
    description: "Eurocode reading"
    url: https://example.com/ocr
    tags: [OCR, Operations]
    pinned: true
  - id: material-intake
    title: "Material Intake"
    description: "Stock control"
    url: https://example.com/intake
    tags: [Stock]
    status: testing
`

func TestSeederRunPopulatesEmptyStore(t *testing.T) {
	st := memstore.New()
	seeder := NewSeeder(writeSeedFile(t, seedYAML), st, logger.New("error", false))

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	portals, err := st.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(portals) != 2 {
		t.Fatalf("store holds %d portals after seeding, want 2", len(portals))
	}

	ocr, err := st.Get(context.Background(), "ocr")
	if err != nil {
		t.Fatalf("Get(ocr) error = %v", err)
	}
	if ocr.Title != "Express OCR" || !ocr.Pinned || ocr.Status != domain.StatusActive {
		t.Errorf("seeded portal = %+v", ocr)
	}
	if ocr.Icon != domain.DefaultIcon {
		t.Errorf("icon = %q, want default %q", ocr.Icon, domain.DefaultIcon)
	}
}

func TestSeederRunSkipsPopulatedStore(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	if _, err := st.Create(ctx, domain.Candidate{
		ID: "existing", Title: "Existing", Description: "kept", URL: "https://example.com",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	seeder := NewSeeder(writeSeedFile(t, seedYAML), st, logger.New("error", false))
	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Operator data survives a restart; the seed file never overwrites.
	if n, _ := st.Count(ctx); n != 1 {
		t.Errorf("store holds %d portals, want the 1 pre-existing", n)
	}
	if _, err := st.Get(ctx, "ocr"); err == nil {
		t.Error("seed portal was inserted into a populated store")
	}
}

func TestSeederRunMissingFile(t *testing.T) {
	st := memstore.New()
	seeder := NewSeeder("/nonexistent/portals.yaml", st, logger.New("error", false))
	if err := seeder.Run(context.Background()); err == nil {
		t.Error("Run() with missing seed file should return error")
	}
}

func TestSeederRunInvalidEntryFailsLoud(t *testing.T) {
	yamlContent := `---
portals:
  - title: "Broken"
    description: "bad status"
    url: https://example.com
    status: retired
`
	st := memstore.New()
	seeder := NewSeeder(writeSeedFile(t, yamlContent), st, logger.New("error", false))
	if err := seeder.Run(context.Background()); err == nil {
		t.Error("Run() with an invalid seed entry should return error")
	}
	if n, _ := st.Count(context.Background()); n != 0 {
		t.Errorf("store holds %d portals after failed seed, want 0", n)
	}
}
