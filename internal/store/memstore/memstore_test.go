package memstore

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/nexai/hub/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	now := testNow
	return New().WithClock(func() time.Time {
		now = now.Add(time.Second)
		return now
	})
}

func candidate(id, title string) domain.Candidate {
	return domain.Candidate{
		ID:          id,
		Title:       title,
		Description: "description for " + title,
		URL:         "https://example.com/" + title,
	}
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, candidate("ocr", "Express OCR"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != "ocr" {
		t.Errorf("id = %q, want caller-supplied %q", created.ID, "ocr")
	}

	got, err := s.Get(ctx, "ocr")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Express OCR" {
		t.Errorf("title = %q, want %q", got.Title, "Express OCR")
	}
}

func TestCreateGeneratesTimeBasedID(t *testing.T) {
	s := newTestStore()

	created, err := s.Create(context.Background(), candidate("", "No ID"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() did not assign an id")
	}
	if created.ID[:7] != "portal-" {
		t.Errorf("id = %q, want portal-<millis>", created.ID)
	}
}

func TestCreateGeneratedIDsNeverCollide(t *testing.T) {
	// A frozen clock forces the millisecond id to repeat.
	s := New().WithClock(func() time.Time { return testNow })
	ctx := context.Background()

	a, err := s.Create(ctx, candidate("", "First"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := s.Create(ctx, candidate("", "Second"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("generated ids collided: %q", a.ID)
	}
}

func TestCreateConflict(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if _, err := s.Create(ctx, candidate("ocr", "First")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err := s.Create(ctx, candidate("ocr", "Second"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Create() with duplicate id error = %v, want ErrConflict", err)
	}

	// The original record survives the failed create.
	got, err := s.Get(ctx, "ocr")
	if err != nil || got.Title != "First" {
		t.Errorf("Get() after conflict = %+v, %v; want the first record intact", got, err)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore()
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestGetAllCanonicalOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for _, c := range []struct {
		id, title string
		pinned    bool
	}{
		{"c", "Charlie", false},
		{"a", "Alpha", false},
		{"p", "Zulu pinned", true},
	} {
		cand := candidate(c.id, c.title)
		cand.Pinned = c.pinned
		if _, err := s.Create(ctx, cand); err != nil {
			t.Fatalf("Create(%s) error = %v", c.id, err)
		}
	}

	first, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	wantIDs := []string{"p", "a", "c"} // pinned first, then title ascending
	gotIDs := make([]string, 0, len(first))
	for _, p := range first {
		gotIDs = append(gotIDs, p.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("GetAll() order = %v, want %v", gotIDs, wantIDs)
	}

	// Two consecutive calls with no mutation return identical orderings.
	second, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("GetAll() not stable across consecutive calls")
	}
}

func TestUpdatePartialPreservesUntouchedFields(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	cand := candidate("ocr", "A")
	cand.Description = "B"
	cand.URL = "C"
	cand.Tags = []string{"x"}
	if _, err := s.Create(ctx, cand); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := s.Update(ctx, "ocr", domain.Patch{Title: domain.Set("A2")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Title != "A2" || updated.Description != "B" || updated.URL != "C" {
		t.Errorf("Update() = %+v, want title A2 with B/C preserved", updated)
	}
	if !reflect.DeepEqual(updated.Tags, []string{"x"}) {
		t.Errorf("tags = %v, want unchanged [x]", updated.Tags)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("updatedAt must be refreshed on update")
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore()
	_, err := s.Update(context.Background(), "missing", domain.Patch{Title: domain.Set("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateValidationLeavesRecordUntouched(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	if _, err := s.Create(ctx, candidate("ocr", "A")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.Update(ctx, "ocr", domain.Patch{Title: domain.Set("")}); !domain.IsValidation(err) {
		t.Fatalf("Update() error = %v, want ValidationError", err)
	}

	got, err := s.Get(ctx, "ocr")
	if err != nil || got.Title != "A" {
		t.Errorf("Get() after failed update = %+v, %v; want title A intact", got, err)
	}
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	if _, err := s.Create(ctx, candidate("ocr", "A")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Delete(ctx, "ocr"); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "ocr"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestCount(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
	if _, err := s.Create(ctx, candidate("a", "A")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	cand := candidate("ocr", "A")
	cand.Tags = []string{"x"}
	if _, err := s.Create(ctx, cand); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, _ := s.Get(ctx, "ocr")
	got.Tags[0] = "mutated"

	fresh, _ := s.Get(ctx, "ocr")
	if fresh.Tags[0] != "x" {
		t.Error("Get() leaked internal state: mutating a read changed the store")
	}
}
