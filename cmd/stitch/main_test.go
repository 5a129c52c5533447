package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T) []string
		expectedExit int
	}{
		{
			name: "version command succeeds",
			setup: func(_ *testing.T) []string {
				return []string{"stitch", "version"}
			},
			expectedExit: 0,
		},
		{
			name: "resolve with valid config",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				jsDir := filepath.Join(dir, "js")
				require.NoError(t, os.MkdirAll(jsDir, 0o750))
				require.NoError(t, os.WriteFile(filepath.Join(jsDir, "app.js"),
					[]byte("var app = {};\n"), 0o600))

				configPath := filepath.Join(dir, "stitch.yaml")
				require.NoError(t, os.WriteFile(configPath, []byte(`version: "1"
origins:
  app: js
paths:
  - origin: app
`), 0o600))
				return []string{"stitch", "-c", configPath, "resolve", "app"}
			},
			expectedExit: 0,
		},
		{
			name: "resolve with missing config fails",
			setup: func(t *testing.T) []string {
				return []string{"stitch", "-c", filepath.Join(t.TempDir(), "absent.yaml"), "resolve", "app"}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.setup(t)
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
