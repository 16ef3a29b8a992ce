package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/nyaainfo/internal/errors"
)

func TestParseTarget(t *testing.T) {
	hash := "0123456789abcdef0123456789abcdef01234567"

	tests := []struct {
		input    string
		valid    bool
		expected string
		kind     TargetKind
	}{
		{"1", true, "1", TargetID},
		{"1234567", true, "1234567", TargetID},
		{"  42 \n", true, "42", TargetID},
		{hash, true, hash, TargetInfoHash},
		{strings.ToUpper(hash), true, hash, TargetInfoHash},
		{" " + hash + " ", true, hash, TargetInfoHash},
		{"0", false, "", 0},
		{"012", false, "", 0},
		{"-1", false, "", 0},
		{"12a", false, "", 0},
		{"", false, "", 0},
		{hash[:39], false, "", 0},
		{hash + "0", false, "", 0},
		{"g123456789abcdef0123456789abcdef01234567", false, "", 0},
		{"12 34", false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			target, err := ParseTarget(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.Equal(t, errors.ErrorTypeUsage, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, target.String())
			assert.Equal(t, tt.kind, target.Kind())
		})
	}
}

func TestTargetKindString(t *testing.T) {
	assert.Equal(t, "id", TargetID.String())
	assert.Equal(t, "hash", TargetInfoHash.String())
}
