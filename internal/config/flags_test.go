package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, args ...string) (*Flags, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"eternal-green"}, args...)
	return ParseFlags("test")
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, err := parseWith(t)
	require.NoError(t, err)
	assert.Empty(t, flags.ConfigPath)
	assert.False(t, flags.Start)
	assert.Zero(t, flags.IntervalOverride)
}

func TestParseFlagsConfigAndStart(t *testing.T) {
	flags, err := parseWith(t, "-f", "/tmp/eg.json", "-s")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/eg.json", flags.ConfigPath)
	assert.True(t, flags.Start)
}

func TestParseFlagsIntervalOverride(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "plain seconds", value: "90", want: 90},
		{name: "duration string", value: "2m", want: 120},
		{name: "below bound", value: "5", wantErr: true},
		{name: "above bound", value: "2h", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseWith(t, "-i", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flags.IntervalOverride)
		})
	}
}
