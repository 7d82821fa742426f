package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "nil input", raw: nil, want: nil},
		{name: "already clean", raw: []string{"A", "B"}, want: []string{"A", "B"}},
		{name: "comma delimited single string", raw: []string{"A, B ,C"}, want: []string{"A", "B", "C"}},
		{name: "whitespace trimmed", raw: []string{"  A  "}, want: []string{"A"}},
		{name: "empty segments dropped", raw: []string{"A,,  ,B"}, want: []string{"A", "B"}},
		{name: "only empty segments", raw: []string{" , ,"}, want: nil},
		{name: "duplicates survive", raw: []string{"A", "A"}, want: []string{"A", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestVocabulary(t *testing.T) {
	portals := []Portal{
		{Tags: []string{"Zeta", "Operations"}},
		{Tags: []string{"Alpha", "Operations", "ExpressGlass"}},
		{Tags: []string{"Mid"}},
	}
	preferred := []string{"ExpressGlass", "Operations"}

	got := Vocabulary(portals, preferred)
	// Preferred tags first in table order, unranked tags after, alphabetical.
	want := []string{"ExpressGlass", "Operations", "Alpha", "Mid", "Zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary() = %v, want %v", got, want)
	}
}

func TestVocabularyDeduplicates(t *testing.T) {
	portals := []Portal{
		{Tags: []string{"A", "A"}},
		{Tags: []string{"A"}},
	}
	got := Vocabulary(portals, nil)
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Vocabulary() = %v, want [A]", got)
	}
}

func TestVocabularyDeterministic(t *testing.T) {
	a := Vocabulary([]Portal{{Tags: []string{"C", "A"}}, {Tags: []string{"B"}}}, nil)
	b := Vocabulary([]Portal{{Tags: []string{"B"}}, {Tags: []string{"A", "C"}}}, nil)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Vocabulary() depends on input order: %v vs %v", a, b)
	}
}

func TestToggleTag(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		tag      string
		want     []string
	}{
		{name: "select new tag", selected: nil, tag: "X", want: []string{"X"}},
		{name: "deselect present tag", selected: []string{"X"}, tag: "X", want: []string{}},
		{name: "deselect keeps others", selected: []string{"A", "X", "B"}, tag: "X", want: []string{"A", "B"}},
		{name: "append preserves order", selected: []string{"A"}, tag: "B", want: []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleTag(tt.selected, tt.tag)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToggleTag(%v, %q) = %v, want %v", tt.selected, tt.tag, got, tt.want)
			}
		})
	}
}

func TestToggleTagTwiceIsNoop(t *testing.T) {
	got := ToggleTag(ToggleTag(nil, "X"), "X")
	if len(got) != 0 {
		t.Errorf("double toggle left %v, want no required tags", got)
	}
}

func TestTagListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TagList
		wantErr bool
	}{
		{name: "array of strings", input: `["A","B"]`, want: TagList{"A", "B"}},
		{name: "single string", input: `"A, B"`, want: TagList{"A, B"}},
		{name: "empty array", input: `[]`, want: TagList{}},
		{name: "number rejected", input: `42`, wantErr: true},
		{name: "mixed array rejected", input: `["A", 1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
