package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerduel.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "poker.txt", cfg.Input)
	assert.Equal(t, "csis.txt", cfg.Output)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
input    = "hands.txt"
output   = "results.txt"
workers  = 8
no_color = true

server {
  address = "0.0.0.0"
  port    = 9000
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hands.txt", cfg.Input)
	assert.Equal(t, "results.txt", cfg.Output)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `input = "hands.txt"`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hands.txt", cfg.Input)
	assert.Equal(t, "csis.txt", cfg.Output)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadInvalidHCL(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `input = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty input", mutate: func(c *Config) { c.Input = "" }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
