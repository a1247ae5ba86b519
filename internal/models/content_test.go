package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTechnologies(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected []string
	}{
		{
			name:     "json array",
			raw:      []byte(`["Python", "PyTorch", "Transformers"]`),
			expected: []string{"Python", "PyTorch", "Transformers"},
		},
		{
			name:     "json string with delimiter",
			raw:      []byte(`"Python, PyTorch, Transformers"`),
			expected: []string{"Python", "PyTorch", "Transformers"},
		},
		{
			name:     "array with padding and empties",
			raw:      []byte(`[" A ", "", "B"]`),
			expected: []string{"A", "B"},
		},
		{
			name:     "empty input",
			raw:      nil,
			expected: []string{},
		},
		{
			name:     "null literal",
			raw:      []byte(`null`),
			expected: []string{},
		},
		{
			name:     "malformed json",
			raw:      []byte(`{"oops": 1`),
			expected: []string{},
		},
		{
			name:     "json object",
			raw:      []byte(`{"tags": ["A"]}`),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeTechnologies(tt.raw))
		})
	}
}

func TestDecodeTechnologies_NeverNil(t *testing.T) {
	assert.NotNil(t, DecodeTechnologies(nil))
	assert.NotNil(t, DecodeTechnologies([]byte(`null`)))
}

func TestEncodeTechnologies(t *testing.T) {
	raw, err := EncodeTechnologies([]string{"A", "B"})
	assert.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(raw))

	raw, err = EncodeTechnologies(nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("category", "level")
	assert.EqualError(t, err, "missing required fields: category, level")

	assert.Nil(t, NewValidationError())
}
