package trip

import "fmt"

// DispatchStatus represents the state of a trip request as it moves through
// processing.
type DispatchStatus string

const (
	StatusReceived DispatchStatus = "received"
	StatusRejected DispatchStatus = "rejected"
	StatusAccepted DispatchStatus = "accepted"
)

// validTransitions defines the state machine for trip request processing.
// Rejection and acceptance are terminal: a rejected request has no side
// effects beyond its message, an accepted one has its trip recorded.
var validTransitions = map[DispatchStatus][]DispatchStatus{
	StatusReceived: {StatusRejected, StatusAccepted},
	StatusRejected: {},
	StatusAccepted: {},
}

// IsValid returns true if the status is a recognized dispatch status.
func (s DispatchStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s DispatchStatus) CanTransitionTo(target DispatchStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s DispatchStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s DispatchStatus) String() string {
	return string(s)
}

// ParseDispatchStatus converts a string to a DispatchStatus, returning an error if invalid.
func ParseDispatchStatus(s string) (DispatchStatus, error) {
	status := DispatchStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid dispatch status: %s", s)
	}
	return status, nil
}
