package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPatchUnmarshalJSONPresence(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"title":"New title","pinned":true}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !p.Title.Present || p.Title.Null || p.Title.Value != "New title" {
		t.Errorf("title = %+v, want set to %q", p.Title, "New title")
	}
	if !p.Pinned.Present || p.Pinned.Null || p.Pinned.Value != true {
		t.Errorf("pinned = %+v, want set to true", p.Pinned)
	}

	// Everything else must stay absent, not null.
	for name, f := range map[string]bool{
		"description": p.Description.Present,
		"url":         p.URL.Present,
		"tags":        p.Tags.Present,
		"status":      p.Status.Present,
		"icon":        p.Icon.Present,
	} {
		if f {
			t.Errorf("field %s marked present, want absent", name)
		}
	}
}

func TestPatchUnmarshalJSONNullVsAbsent(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"tags":null,"icon":null}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !p.Tags.Present || !p.Tags.Null {
		t.Errorf("tags = %+v, want explicit null", p.Tags)
	}
	if !p.Icon.Present || !p.Icon.Null {
		t.Errorf("icon = %+v, want explicit null", p.Icon)
	}
	if p.Title.Present {
		t.Errorf("title = %+v, want absent", p.Title)
	}
}

func TestPatchUnmarshalJSONTagShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "array", input: `{"tags":["A","B"]}`, want: []string{"A", "B"}},
		{name: "comma string", input: `{"tags":"A, B"}`, want: []string{"A, B"}},
		{name: "empty array clears via value", input: `{"tags":[]}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Patch
			if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if !p.Tags.Present || p.Tags.Null {
				t.Fatalf("tags = %+v, want set", p.Tags)
			}
			if !reflect.DeepEqual(p.Tags.Value, tt.want) {
				t.Errorf("tags value = %v, want %v", p.Tags.Value, tt.want)
			}
		})
	}
}

func TestPatchUnmarshalJSONUnknownKeysIgnored(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"bogus":1,"created_at":"2020-01-01"}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !p.IsEmpty() {
		t.Errorf("patch = %+v, want empty", p)
	}
}

func TestPatchUnmarshalJSONTypeMismatch(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"pinned":"yes"}`), &p); err == nil {
		t.Error("Unmarshal() should reject a string for pinned")
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	p := Patch{Title: Set("x")}
	if p.IsEmpty() {
		t.Error("patch with a title should not be empty")
	}
	p = Patch{Tags: Clear[[]string]()}
	if p.IsEmpty() {
		t.Error("patch with an explicit null should not be empty")
	}
}
