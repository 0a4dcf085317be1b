package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple id", input: "alice"},
		{name: "uuid-ish id", input: "7f9c2f3a-9f41-4d2a-8a9e-1c2d3e4f5a6b"},
		{name: "email-style id", input: "alice@example.com"},
		{name: "max length", input: strings.Repeat("a", 128)},
		{name: "empty", input: "", wantErr: "user id is required"},
		{name: "blank", input: "   ", wantErr: "user id is required"},
		{name: "too long", input: strings.Repeat("a", 129), wantErr: "exceeds 128 characters"},
		{name: "embedded space", input: "alice smith", wantErr: "whitespace or control"},
		{name: "tab", input: "alice\tsmith", wantErr: "whitespace or control"},
		{name: "newline", input: "alice\n", wantErr: "whitespace or control"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserID(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, got.IsNil())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
			assert.False(t, got.IsNil())
		})
	}
}

func TestParseSessionID(t *testing.T) {
	got, err := ParseSessionID("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.String())

	_, err = ParseSessionID("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session id is required")

	_, err = ParseSessionID("sess 1")
	require.Error(t, err)
}
