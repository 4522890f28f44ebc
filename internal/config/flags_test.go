package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags verifies every path flag, including the -c alias.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Sources
	}{
		{name: "no flags", args: nil, want: Sources{}},
		{name: "short config", args: []string{"-c", "general.yaml"}, want: Sources{GeneralConfigPath: "general.yaml"}},
		{name: "long config", args: []string{"-config=general.yaml"}, want: Sources{GeneralConfigPath: "general.yaml"}},
		{
			name: "all",
			args: []string{"-config", "g.yaml", "-secrets", "s.yaml", "-genesis", "gen.yaml"},
			want: Sources{GeneralConfigPath: "g.yaml", SecretsPath: "s.yaml", GenesisPath: "gen.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

// TestParseFlags_Unknown verifies that unknown flags are reported.
func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"-d", "postgres://"})
	assert.Error(t, err)
}
