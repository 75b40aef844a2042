package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"off", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, DefaultConfig())
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("chart", "ALPHA").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "chart=ALPHA")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not be coloured")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "error", Verbose: true})
	require.NoError(t, err)

	log.Debug().Msg("read line")
	assert.Contains(t, buf.String(), "read line")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Level: "chatty"})
	assert.Error(t, err)
}
