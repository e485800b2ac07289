package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrMetrics,
		ErrExport,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Interval must be a positive number of seconds",
			suggestion: "Pass --interval 2 or set interval in .sysmon.yaml",
		},
		{
			name:       "metrics error",
			code:       ErrMetrics,
			message:    "Couldn't read memory stats",
			suggestion: "",
		},
		{
			name:       "export error",
			code:       ErrExport,
			message:    "Unknown output format: xml",
			suggestion: "Available formats: json, prometheus, yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check .sysmon.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check .sysmon.yaml syntax"},
		},
		{
			name:          "cause is included",
			err:           WrapWithCode(fmt.Errorf("permission denied"), ErrMetrics, "Refresh failed", ""),
			expectedParts: []string{"Refresh failed", "permission denied"},
		},
		{
			name:          "no suggestion",
			err:           New(ErrExport, "Encoding failed", ""),
			expectedParts: []string{"Encoding failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("open /proc/meminfo: no such file or directory"),
		ErrMetrics,
		"Couldn't refresh host metrics",
		"Run with SYSMON_DEBUG=1 for details",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"), "first line should start with failure symbol")
	assert.Contains(t, lines[0], "Couldn't refresh host metrics")
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk usage unavailable")
	wrapped := Wrap(cause, "Refresh failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrMetrics, wrapped.Code, "Wrap should default to ErrMetrics code")
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Check the path")

	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Check the path", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := fmt.Errorf("outer: %w", WrapWithCode(cause, ErrExport, "Export error", ""))

	assert.True(t, errors.Is(wrapped, cause))

	var smErr *Error
	require.True(t, errors.As(wrapped, &smErr))
	assert.Equal(t, ErrExport, smErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrMetrics))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrConfig))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}
