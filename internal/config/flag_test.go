package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "dsn and session validity",
			args: []string{"cmd", "-d", "/tmp/x.db", "-t", "30"},
			expected: &Config{
				DatabaseDSN:     "/tmp/x.db",
				SessionValidity: 30 * time.Minute,
			},
		},
		{
			name: "seed disabled",
			args: []string{"cmd", "-s=false"},
			expected: &Config{
				SeedDemoData:    false,
				SessionValidity: 0,
			},
		},
		{
			name:        "incorrect session validity",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
