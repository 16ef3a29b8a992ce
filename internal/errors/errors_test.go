package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaumene/nyaainfo/internal/constants"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, constants.ExitOK},
		{"usage", NewInvalidTargetError("abc"), constants.ExitUsage},
		{"auth", NewAuthConfigError(), constants.ExitUsage},
		{"transport", NewTransportError("http://x", stderrors.New("refused")), constants.ExitTransport},
		{"bad response", NewResponseParseError("<html>500</html>", nil), constants.ExitBadResult},
		{"api", NewAPIError("not found"), constants.ExitBadResult},
		{"wrapped api", fmt.Errorf("query: %w", NewAPIError("x")), constants.ExitBadResult},
		{"plain", stderrors.New("boom"), constants.ExitBadResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestRecoveredMessages(t *testing.T) {
	parseErr := NewResponseParseError("<html>500</html>", nil)
	assert.True(t, IsRecovered(parseErr))
	assert.Equal(t, "Bad response:\n<html>500</html>", parseErr.Message)

	apiErr := NewAPIError("not found")
	assert.True(t, IsRecovered(apiErr))
	assert.Equal(t, "Info request failed: not found", apiErr.Message)

	assert.False(t, IsRecovered(NewAuthConfigError()))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewTransportError("http://localhost", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "caused by: connection refused")
	assert.Equal(t, ErrorTypeTransport, TypeOf(err))
}
