package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    DispatchStatus
		to      DispatchStatus
		allowed bool
	}{
		{"received to rejected", StatusReceived, StatusRejected, true},
		{"received to accepted", StatusReceived, StatusAccepted, true},
		{"rejected is terminal", StatusRejected, StatusAccepted, false},
		{"accepted is terminal", StatusAccepted, StatusRejected, false},
		{"no self loop", StatusReceived, StatusReceived, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDispatchStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusReceived.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, DispatchStatus("bogus").IsTerminal())
}

func TestParseDispatchStatus(t *testing.T) {
	status, err := ParseDispatchStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, status)

	_, err = ParseDispatchStatus("processed")
	assert.Error(t, err)
}
