package domain

// Status describes the lifecycle stage of a portal.
type Status string

const (
	StatusActive   Status = "active"
	StatusTesting  Status = "testing"
	StatusBuilding Status = "building"
	StatusPaused   Status = "paused"

	// StatusAll is a filter sentinel, never persisted on a portal.
	StatusAll Status = "all"
)

// Statuses lists every persistable status, in display order.
var Statuses = []Status{StatusActive, StatusTesting, StatusBuilding, StatusPaused}

// ParseStatus validates a raw status string. The empty string maps to
// StatusActive (the creation default); anything outside the enumeration is
// rejected, never silently accepted.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusActive, nil
	}
	s := Status(raw)
	for _, known := range Statuses {
		if s == known {
			return s, nil
		}
	}
	return "", NewValidationError("status", "unknown status "+raw)
}

// Valid reports whether s is a member of the persistable enumeration.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
