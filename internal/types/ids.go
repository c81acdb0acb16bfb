package types

import (
	"github.com/google/uuid"
)

// RunID identifies a single action invocation. It is attached to every log
// entry and sent as the X-Request-Id header on outbound API calls so one CI
// run can be correlated end to end.
type RunID string

// NewRunID generates a new UUID v4 run identifier.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// String returns the string representation of the RunID.
func (id RunID) String() string {
	return string(id)
}

// IsZero checks if the RunID is empty.
func (id RunID) IsZero() bool {
	return id == ""
}
