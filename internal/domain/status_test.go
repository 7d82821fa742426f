package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr bool
	}{
		{name: "empty defaults to active", raw: "", want: StatusActive},
		{name: "active", raw: "active", want: StatusActive},
		{name: "testing", raw: "testing", want: StatusTesting},
		{name: "building", raw: "building", want: StatusBuilding},
		{name: "paused", raw: "paused", want: StatusPaused},
		{name: "unknown rejected", raw: "archived", wantErr: true},
		{name: "all is not persistable", raw: "all", wantErr: true},
		{name: "case sensitive", raw: "Active", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !IsValidation(err) {
					t.Errorf("ParseStatus(%q) error is not a ValidationError: %v", tt.raw, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("Status %q should be valid", s)
		}
	}
	if StatusAll.Valid() {
		t.Error("StatusAll must not be a persistable status")
	}
	if Status("").Valid() {
		t.Error("empty status must not be valid")
	}
}
