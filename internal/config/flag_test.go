package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name:     "both flags set",
			args:     []string{"cmd", "-d", "/tmp/other.db", "-l", "debug"},
			expected: &Config{DatabaseDSN: "/tmp/other.db", LogLevel: "debug"},
		},
		{
			name:     "no flags keeps existing values",
			args:     []string{"cmd"},
			expected: &Config{DatabaseDSN: "campusfind.db", LogLevel: "info"},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-x", "1", "-d", "a.db"},
			expected: &Config{DatabaseDSN: "a.db", LogLevel: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
