package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStack(t *testing.T) {
	tests := []struct {
		input       string
		expected    Stack
		expectError bool
	}{
		{input: "STANDARD", expected: StackStandard},
		{input: "SPECIAL", expected: StackSpecial},
		{input: "REJECTED", expected: StackRejected},
		{input: "standard", expectError: true},
		{input: "Special", expectError: true},
		{input: "", expectError: true},
		{input: "OVERSIZE", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			stack, err := ParseStack(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidStack)
				assert.True(t, stack.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stack)
			assert.Equal(t, tt.input, stack.String())
		})
	}
}

func TestStackOrdering(t *testing.T) {
	assert.True(t, StackRejected.IsMoreRestrictiveThan(StackSpecial))
	assert.True(t, StackSpecial.IsMoreRestrictiveThan(StackStandard))
	assert.True(t, StackRejected.IsMoreRestrictiveThan(StackStandard))
	assert.False(t, StackStandard.IsMoreRestrictiveThan(StackSpecial))
	assert.False(t, StackSpecial.IsMoreRestrictiveThan(StackSpecial))
	assert.True(t, StackSpecial.Equals(StackSpecial))
	assert.False(t, StackSpecial.Equals(StackRejected))
}

func TestStackJSON(t *testing.T) {
	type payload struct {
		Stack Stack `json:"stack"`
	}

	data, err := json.Marshal(payload{Stack: StackRejected})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stack":"REJECTED"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"stack":"SPECIAL"}`), &decoded))
	assert.Equal(t, StackSpecial, decoded.Stack)

	err = json.Unmarshal([]byte(`{"stack":"special"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidStack)
}
