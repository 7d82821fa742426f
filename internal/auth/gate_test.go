package auth

import "testing"

func TestGateAuthorize(t *testing.T) {
	gate := NewGate("s3cret")

	tests := []struct {
		name       string
		credential string
		want       bool
	}{
		{name: "exact match granted", credential: "s3cret", want: true},
		{name: "wrong credential denied", credential: "guess", want: false},
		{name: "empty credential denied", credential: "", want: false},
		{name: "prefix denied", credential: "s3cre", want: false},
		{name: "suffix denied", credential: "s3cret ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.Authorize(tt.credential); got != tt.want {
				t.Errorf("Authorize(%q) = %v, want %v", tt.credential, got, tt.want)
			}
		})
	}
}

func TestGateEmptySecretDeniesEverything(t *testing.T) {
	gate := NewGate("")
	if gate.Authorize("") {
		t.Error("an unconfigured gate must never grant, even for an empty credential")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer s3cret", want: "s3cret"},
		{name: "missing header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic s3cret", want: ""},
		{name: "lowercase scheme rejected", header: "bearer s3cret", want: ""},
		{name: "scheme without token", header: "Bearer ", want: ""},
		{name: "no space", header: "Bearers3cret", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BearerToken(tt.header); got != tt.want {
				t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
